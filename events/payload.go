package events

import (
	"errors"
	"fmt"
)

func (event *Event) payload(name string) (interface{}, error) {
	if event.Name != name {
		return nil, fmt.Errorf("The event must be named %s", name)
	}

	if len(event.Args) != 1 {
		return nil, errors.New("Event does not contain data")
	}

	return event.Args[0], nil
}
