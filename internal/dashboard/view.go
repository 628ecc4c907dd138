package dashboard

import "wbexplorer.org/internal/stats"

type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
)

// Section names the part of the page a message belongs to.
type Section string

const (
	SectionSelection   Section = "selection"
	SectionTimeSeries  Section = "timeseries"
	SectionSummary     Section = "summary"
	SectionCorrelation Section = "correlation"
)

// Message is a non-fatal notice shown instead of (or next to) a suppressed view.
type Message struct {
	Level   Level   `json:"level"`
	Section Section `json:"section"`
	Text    string  `json:"text"`
}

// Selection is everything the user controls on the page.
type Selection struct {
	Countries    []string `json:"countries"`
	Primary      string   `json:"primary"`
	Secondary    string   `json:"secondary,omitempty"`
	CorrelationX string   `json:"correlationX,omitempty"`
	CorrelationY string   `json:"correlationY,omitempty"`
}

type Axis struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Line is one country's series on one of the y axes.
type Line struct {
	Label     string  `json:"label"`
	Country   string  `json:"country"`
	Indicator string  `json:"indicator"`
	Secondary bool    `json:"secondary"`
	Points    []Point `json:"points"`
}

type TimeSeriesView struct {
	Title     string `json:"title"`
	XLabel    string `json:"xLabel"`
	Primary   Axis   `json:"primary"`
	Secondary *Axis  `json:"secondary,omitempty"`
	Lines     []Line `json:"lines"`
}

// Dual reports whether the chart needs a secondary y axis.
func (v *TimeSeriesView) Dual() bool {
	return v.Secondary != nil
}

type SummaryRow struct {
	Country string        `json:"country"`
	Values  []string      `json:"values"`
	Stats   stats.Summary `json:"-"`
}

// SummaryTable is the descriptive-statistics table of one indicator.
type SummaryTable struct {
	Indicator Axis         `json:"indicator"`
	Columns   []string     `json:"columns"`
	Rows      []SummaryRow `json:"rows"`
}

type ScatterPoint struct {
	Country string  `json:"country"`
	Year    int     `json:"year"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

type CorrelationView struct {
	X         Axis           `json:"x"`
	Y         Axis           `json:"y"`
	N         int            `json:"n"`
	R         float64        `json:"r"`
	PValue    float64        `json:"pValue"`
	RText     string         `json:"rText"`
	PText     string         `json:"pText"`
	Slope     float64        `json:"slope"`
	Intercept float64        `json:"intercept"`
	Points    []ScatterPoint `json:"points"`
	Trend     []Point        `json:"trend"`
}

// View is the complete render model of one page.
type View struct {
	Selection   Selection        `json:"selection"`
	Messages    []Message        `json:"messages"`
	TimeSeries  *TimeSeriesView  `json:"timeSeries,omitempty"`
	Summaries   []SummaryTable   `json:"summaries"`
	Correlation *CorrelationView `json:"correlation,omitempty"`
}

func (v *View) info(section Section, text string) {
	v.Messages = append(v.Messages, Message{Level: LevelInfo, Section: section, Text: text})
}

func (v *View) warn(section Section, text string) {
	v.Messages = append(v.Messages, Message{Level: LevelWarning, Section: section, Text: text})
}

// HasWarnings reports whether any message is a warning.
func (v *View) HasWarnings() bool {
	for _, m := range v.Messages {
		if m.Level == LevelWarning {
			return true
		}
	}
	return false
}
