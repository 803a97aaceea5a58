package portfolio

import (
	"sync"

	"github.com/codr1/personafolio/internal/models"
)

// Element identifies a page region the controller toggles.
type Element string

const (
	ElementPersonaSelection    Element = "persona-selection"
	ElementPortfolioSection    Element = "portfolio-section"
	ElementLoading             Element = "portfolio-loading"
	ElementContent             Element = "portfolio-content"
	ElementSelectedPersonaName Element = "selected-persona-name"
)

// StyleNode is a style-bearing node identified by ID.
type StyleNode struct {
	ID           string           `json:"id"`
	CSS          string           `json:"css"`
	Persona      models.PersonaID `json:"persona"`
	GenerationID string           `json:"generationId"`
}

// Document is the page the controller mutates.
type Document interface {
	// InjectStylesheet replaces any node with the same ID in one step.
	InjectStylesheet(node StyleNode)
	RemoveStylesheet(id string) bool
	SetBodyClass(class string)
	SetVisible(element Element, visible bool)
	SetText(element Element, text string)
	// Notify shows a blocking notice to the visitor.
	Notify(message string)
}

// DocumentSnapshot is a point-in-time copy of a MemoryDocument.
type DocumentSnapshot struct {
	Stylesheets []StyleNode        `json:"stylesheets"`
	BodyClass   string             `json:"bodyClass"`
	Visible     map[Element]bool   `json:"visible"`
	Text        map[Element]string `json:"text"`
	Notice      string             `json:"notice,omitempty"`
	Injections  int                `json:"injections"`
}

// Stylesheet returns the node with id, if present.
func (s DocumentSnapshot) Stylesheet(id string) (StyleNode, bool) {
	for _, node := range s.Stylesheets {
		if node.ID == id {
			return node, true
		}
	}
	return StyleNode{}, false
}

// MemoryDocument is an in-process page model rendered by the HTTP layer.
type MemoryDocument struct {
	mu          sync.RWMutex
	stylesheets []StyleNode
	bodyClass   string
	visible     map[Element]bool
	text        map[Element]string
	notice      string
	injections  int
}

// NewMemoryDocument starts with only the persona selection visible.
func NewMemoryDocument() *MemoryDocument {
	return &MemoryDocument{
		visible: map[Element]bool{
			ElementPersonaSelection: true,
			ElementPortfolioSection: false,
			ElementLoading:          false,
			ElementContent:          false,
		},
		text: make(map[Element]string),
	}
}

func (d *MemoryDocument) InjectStylesheet(node StyleNode) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.injections++
	for i, existing := range d.stylesheets {
		if existing.ID == node.ID {
			d.stylesheets[i] = node
			return
		}
	}
	d.stylesheets = append(d.stylesheets, node)
}

func (d *MemoryDocument) RemoveStylesheet(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	for i, existing := range d.stylesheets {
		if existing.ID == id {
			d.stylesheets = append(d.stylesheets[:i], d.stylesheets[i+1:]...)
			return true
		}
	}
	return false
}

func (d *MemoryDocument) SetBodyClass(class string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bodyClass = class
}

func (d *MemoryDocument) SetVisible(element Element, visible bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.visible[element] = visible
}

func (d *MemoryDocument) SetText(element Element, text string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.text[element] = text
}

func (d *MemoryDocument) Notify(message string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notice = message
}

// TakeNotice returns the pending notice and clears it.
func (d *MemoryDocument) TakeNotice() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	notice := d.notice
	d.notice = ""
	return notice
}

func (d *MemoryDocument) Snapshot() DocumentSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()

	snapshot := DocumentSnapshot{
		Stylesheets: make([]StyleNode, len(d.stylesheets)),
		BodyClass:   d.bodyClass,
		Visible:     make(map[Element]bool, len(d.visible)),
		Text:        make(map[Element]string, len(d.text)),
		Notice:      d.notice,
		Injections:  d.injections,
	}
	copy(snapshot.Stylesheets, d.stylesheets)
	for element, visible := range d.visible {
		snapshot.Visible[element] = visible
	}
	for element, text := range d.text {
		snapshot.Text[element] = text
	}
	return snapshot
}
