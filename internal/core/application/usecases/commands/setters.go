package commands

import "dentallab/internal/core/domain/model/kernel"

func setActor(dst *kernel.Actor, actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	*dst = actor
	return nil
}

func setID(dst *kernel.ID, id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	*dst = id
	return nil
}
