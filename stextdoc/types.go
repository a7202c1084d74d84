package stextdoc

// Wire types mirroring MuPDF structured-text JSON output
// (mutool convert -F stext.json).

type stextDocument struct {
	Pages []stextPage `json:"pages"`
}

type stextPage struct {
	Width  float64      `json:"width"`
	Height float64      `json:"height"`
	Blocks []stextBlock `json:"blocks"`
}

type stextBlock struct {
	Type  string      `json:"type"`
	BBox  stextBBox   `json:"bbox"`
	Lines []stextLine `json:"lines"`
}

type stextBBox struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

type stextLine struct {
	WMode int       `json:"wmode"`
	BBox  stextBBox `json:"bbox"`
	Font  stextFont `json:"font"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Text  string    `json:"text"`
}

type stextFont struct {
	Name   string  `json:"name"`
	Family string  `json:"family"`
	Weight string  `json:"weight"`
	Style  string  `json:"style"`
	Size   float64 `json:"size"`
}
