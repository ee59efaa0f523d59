package input

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/milk9111/catjump/logger"
	"go.uber.org/zap"
)

// Script drives the player from a tengo program, for demo playback and
// soak runs. Each frame the program sees `frame` and assigns `axis_x`,
// `axis_y` (stick axes in [-1, 1]) and `jump`.
type Script struct {
	name     string
	compiled *tengo.Compiled
	stick    Joystick
	frame    int
	failed   bool
}

func NewScript(name string, src []byte) (*Script, error) {
	compiled, err := compileScript(name, src)
	if err != nil {
		return nil, err
	}
	return &Script{name: name, compiled: compiled}, nil
}

// Reload swaps in new source and re-enables a script that failed. The frame
// count carries on. On a compile error the running program is kept.
func (s *Script) Reload(src []byte) error {
	compiled, err := compileScript(s.name, src)
	if err != nil {
		return err
	}
	s.compiled = compiled
	s.failed = false
	return nil
}

func compileScript(name string, src []byte) (*tengo.Compiled, error) {
	script := tengo.NewScript(src)
	_ = script.Add("frame", 0)
	_ = script.Add("axis_x", 0.0)
	_ = script.Add("axis_y", 0.0)
	_ = script.Add("jump", false)
	script.SetImports(stdlib.GetModuleMap("math", "rand"))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input: compile script %s: %w", name, err)
	}
	return compiled, nil
}

// Frame returns how many frames the script has run.
func (s *Script) Frame() int {
	if s == nil {
		return 0
	}
	return s.frame
}

func (s *Script) Poll() Contribution {
	if s == nil || s.compiled == nil || s.failed {
		return Contribution{}
	}
	s.frame++
	if err := s.reset(); err != nil {
		s.fail(err)
		return Contribution{}
	}
	if err := s.compiled.Run(); err != nil {
		s.fail(err)
		return Contribution{}
	}

	s.stick.Push(mgl32.Vec2{
		float32(s.compiled.Get("axis_x").Float()),
		float32(s.compiled.Get("axis_y").Float()),
	})
	c := s.stick.Poll()
	c.Jump = s.compiled.Get("jump").Bool()
	return c
}

func (s *Script) reset() error {
	if err := s.compiled.Set("frame", s.frame); err != nil {
		return err
	}
	if err := s.compiled.Set("axis_x", 0.0); err != nil {
		return err
	}
	if err := s.compiled.Set("axis_y", 0.0); err != nil {
		return err
	}
	return s.compiled.Set("jump", false)
}

// fail disables the script so one bad frame does not spam the log.
func (s *Script) fail(err error) {
	s.failed = true
	logger.L().Warn("input script disabled",
		zap.String("script", s.name),
		zap.Int("frame", s.frame),
		zap.Error(err),
	)
}
