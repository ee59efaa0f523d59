package ecs

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Entity packs a slot id (low 32 bits) with the slot's generation (high 32
// bits). A destroyed slot is reissued with a bumped generation, so stale
// copies fail IsAlive. Slot ids start at 1; the zero Entity is never issued.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(gen)<<32 | Entity(id)
}

func (e Entity) id() entityID {
	return entityID(e & 0xffffffff)
}

func (e Entity) generation() generation {
	return generation(e >> 32)
}

func (e Entity) Valid() bool {
	return e.id() != 0
}

// String renders "id.gen", e.g. "3.1" for the second use of slot 3.
func (e Entity) String() string {
	return fmt.Sprintf("%d.%d", e.id(), e.generation())
}

func (e Entity) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddUint32("id", uint32(e.id()))
	enc.AddUint32("gen", uint32(e.generation()))
	return nil
}
