package world

import "fmt"

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

type ContentType string

const (
	ContentMonster       ContentType = "monster"
	ContentResource      ContentType = "resource"
	ContentWorkshop      ContentType = "workshop"
	ContentBank          ContentType = "bank"
	ContentGrandExchange ContentType = "grand_exchange"
	ContentTasksMaster   ContentType = "tasks_master"
)

func ContentTypes() []ContentType {
	return []ContentType{
		ContentMonster,
		ContentResource,
		ContentWorkshop,
		ContentBank,
		ContentGrandExchange,
		ContentTasksMaster,
	}
}

type Content struct {
	Type ContentType `json:"type"`
	Code string      `json:"code"`
}

// Location is one map cell as reported by the map index.
type Location struct {
	Name    string   `json:"name,omitempty"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Content *Content `json:"content,omitempty"`
}

func (l Location) Position() Position {
	return Position{X: l.X, Y: l.Y}
}

func (l Location) ContentType() ContentType {
	if l.Content == nil {
		return ""
	}
	return l.Content.Type
}

func (l Location) ContentCode() string {
	if l.Content == nil {
		return ""
	}
	return l.Content.Code
}
