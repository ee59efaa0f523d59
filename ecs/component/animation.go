package component

// ClipHandle references one clip of the actor's animation asset. Index is
// the clip's position in load order.
type ClipHandle struct {
	Index    int
	Name     string
	Duration float32
}

// AnimationGraph is the ordered clip set bound to an actor.
type AnimationGraph struct {
	Clips    []ClipHandle
	JumpClip int
	Initial  int
}

var AnimationGraphComponent = NewComponent[AnimationGraph]()

// AnimationPlayer plays one clip at a time.
type AnimationPlayer struct {
	Current int
	Looping bool
	Playing bool
	Elapsed float32
}

func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{Current: -1}
}

// Play starts clip index. Requesting the clip that is already playing with
// the same loop mode leaves playback untouched.
func (p *AnimationPlayer) Play(index int, loop bool) {
	if p == nil || index < 0 {
		return
	}
	if p.Playing && p.Current == index && p.Looping == loop {
		return
	}
	p.Current = index
	p.Looping = loop
	p.Playing = true
	p.Elapsed = 0
}

var AnimationPlayerComponent = NewComponent[AnimationPlayer]()
