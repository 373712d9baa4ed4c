package tracingweb

import "fmt"

// Timeline labels are the span's or event's declared name, passed through
// as-is; no escaping or truncation happens here, the browser's own string
// handling applies. Transition marks additionally carry the host-assigned
// span id so repeated enters of the same-named span stay distinguishable.

func spanLabel(name string) string {
	if len(name) != 0 {
		return name
	}
	return "<unnamed_span>"
}

func transitionLabel(name string, id uint64, transition string) string {
	return fmt.Sprintf("%s [%d]: span-%s", spanLabel(name), id, transition)
}

func eventLabel(ev Event) string {
	if len(ev.Metadata.Name) != 0 {
		return ev.Metadata.Name
	}
	return ev.Metadata.Target
}
