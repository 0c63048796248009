package gaze

import "github.com/muhittincamdali/go-gazekit/pkg/spatial"

// EventType distinguishes the two focus transitions.
type EventType int

const (
	// Enter marks gaze arriving on a target.
	Enter EventType = iota
	// Exit marks gaze leaving a target.
	Exit
)

// Event is one focus transition produced by routing a sample.
type Event struct {
	Type     EventType
	TargetID string
}

type registration struct {
	id     string
	region Region
}

// Router hit-tests gaze positions against registered regions and turns
// focus changes into enter/exit events. Regions are tested in
// registration order; the first containing region wins, so overlapping
// regions resolve deterministically. Like the rest of the interaction
// core, a Router is confined to the loop goroutine.
type Router struct {
	regions []registration
	focus   string // id of the currently gazed target, "" if none
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{}
}

// Add registers a region for a target id. Re-adding an id replaces its
// region in place.
func (r *Router) Add(id string, region Region) {
	for i := range r.regions {
		if r.regions[i].id == id {
			r.regions[i].region = region
			return
		}
	}
	r.regions = append(r.regions, registration{id: id, region: region})
}

// Remove unregisters a target's region. If the target was focused, an
// Exit event is returned so the dwell cycle cancels cleanly.
func (r *Router) Remove(id string) []Event {
	for i := range r.regions {
		if r.regions[i].id == id {
			r.regions = append(r.regions[:i], r.regions[i+1:]...)
			if r.focus == id {
				r.focus = ""
				return []Event{{Type: Exit, TargetID: id}}
			}
			return nil
		}
	}
	return nil
}

// Focus returns the id of the currently gazed target, or "" if gaze is
// on no target.
func (r *Router) Focus() string {
	return r.focus
}

// Route hit-tests one gaze position and returns the resulting focus
// transitions: at most one Exit followed by at most one Enter. An
// invalid position is ignored and the focus is unchanged.
func (r *Router) Route(p spatial.Vec3) []Event {
	if !p.IsValid() {
		return nil
	}

	hit := ""
	for _, reg := range r.regions {
		if reg.region.Contains(p) {
			hit = reg.id
			break
		}
	}

	if hit == r.focus {
		return nil
	}

	var events []Event
	if r.focus != "" {
		events = append(events, Event{Type: Exit, TargetID: r.focus})
	}
	if hit != "" {
		events = append(events, Event{Type: Enter, TargetID: hit})
	}
	r.focus = hit
	return events
}

// Retarget sets focus directly from a host-resolved target id,
// bypassing hit testing, and returns the same transition events Route
// would. An empty id behaves like Clear.
func (r *Router) Retarget(id string) []Event {
	if id == r.focus {
		return nil
	}
	var events []Event
	if r.focus != "" {
		events = append(events, Event{Type: Exit, TargetID: r.focus})
	}
	if id != "" {
		events = append(events, Event{Type: Enter, TargetID: id})
	}
	r.focus = id
	return events
}

// Clear drops the current focus (e.g. when the sample feed goes away),
// returning the Exit event if a target was focused.
func (r *Router) Clear() []Event {
	if r.focus == "" {
		return nil
	}
	id := r.focus
	r.focus = ""
	return []Event{{Type: Exit, TargetID: id}}
}
