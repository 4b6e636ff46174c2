package persist

import (
	"encoding/json"

	"github.com/teamflowhq/teamflow/internal/domain"
)

// Wire shapes. Field names match the persisted schema; domain structs
// stay free of serialization tags.

type wireMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type wireTask struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Area      string  `json:"area,omitempty"`
	Remarks   string  `json:"remarks,omitempty"`
	MemberID  string  `json:"memberId"`
	Day       int     `json:"day"`
	StartTime float64 `json:"startTime"`
	Duration  float64 `json:"duration"`
}

type wireTodo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	MemberID  string `json:"memberId,omitempty"`
}

type wireEngagement struct {
	Title string `json:"title"`
	Notes string `json:"notes"`
}

type wireSnapshot struct {
	Members    []wireMember   `json:"members"`
	Tasks      []wireTask     `json:"tasks"`
	Engagement wireEngagement `json:"engagement"`
	Todos      []wireTodo     `json:"todos"`
}

// rawSnapshot defers field decoding so one bad field cannot poison
// the rest. There is no version tag; absent field means default.
type rawSnapshot struct {
	Members    json.RawMessage `json:"members"`
	Tasks      json.RawMessage `json:"tasks"`
	Engagement json.RawMessage `json:"engagement"`
	Todos      json.RawMessage `json:"todos"`
}

// Encode renders a snapshot as the persisted JSON document.
func Encode(s domain.Snapshot) ([]byte, error) {
	w := wireSnapshot{
		Members:    make([]wireMember, 0, len(s.Members)),
		Tasks:      make([]wireTask, 0, len(s.Tasks)),
		Engagement: wireEngagement(s.Engagement),
		Todos:      make([]wireTodo, 0, len(s.Todos)),
	}
	for _, m := range s.Members {
		w.Members = append(w.Members, wireMember(m))
	}
	for _, t := range s.Tasks {
		w.Tasks = append(w.Tasks, wireTask(t))
	}
	for _, td := range s.Todos {
		w.Todos = append(w.Todos, wireTodo(td))
	}
	return json.Marshal(w)
}

// present distinguishes a field that was written (possibly empty)
// from one that is absent or JSON null.
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// Decode parses a persisted document, substituting the given defaults
// field by field: a field that is absent or fails to decode falls back
// wholesale to its default, never to a partial merge. An undecodable
// document yields all defaults.
func Decode(data []byte, defaults domain.Snapshot) domain.Snapshot {
	out := defaults.Clone()

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return out
	}

	if present(raw.Members) {
		var ms []wireMember
		if err := json.Unmarshal(raw.Members, &ms); err == nil {
			out.Members = make([]domain.Member, 0, len(ms))
			for _, m := range ms {
				out.Members = append(out.Members, domain.Member(m))
			}
		}
	}
	if present(raw.Tasks) {
		var ts []wireTask
		if err := json.Unmarshal(raw.Tasks, &ts); err == nil {
			out.Tasks = make([]domain.Task, 0, len(ts))
			for _, t := range ts {
				out.Tasks = append(out.Tasks, domain.Task(t))
			}
		}
	}
	if present(raw.Engagement) {
		var e wireEngagement
		if err := json.Unmarshal(raw.Engagement, &e); err == nil {
			out.Engagement = domain.Engagement(e)
		}
	}
	if present(raw.Todos) {
		var tds []wireTodo
		if err := json.Unmarshal(raw.Todos, &tds); err == nil {
			out.Todos = make([]domain.Todo, 0, len(tds))
			for _, td := range tds {
				out.Todos = append(out.Todos, domain.Todo(td))
			}
		}
	}
	return out
}
