// Package clash models Clash of Code puzzles as served by the CodinGame
// contribution API.
package clash

import "encoding/json"

// Clash is one puzzle contribution. The wire format nests the editable
// payload under lastVersion.data; accessors below flatten that away.
type Clash struct {
	ID           uint32       `json:"id"`
	PublicHandle PublicHandle `json:"publicHandle"`
	LastVersion  Version      `json:"lastVersion"`
	Type         string       `json:"type"`
	UpVotes      int          `json:"upVotes"`
	DownVotes    int          `json:"downVotes"`
}

type Version struct {
	Version int  `json:"version"`
	Data    Data `json:"data"`
}

// Data is the puzzle payload: statement markup, test cases and the game
// modes the puzzle supports.
type Data struct {
	Title             string     `json:"title"`
	Fastest           bool       `json:"fastest"`
	Reverse           bool       `json:"reverse"`
	Shortest          bool       `json:"shortest"`
	Statement         string     `json:"statement"`
	TestCases         []TestCase `json:"testCases"`
	Constraints       string     `json:"constraints,omitempty"`
	StubGenerator     string     `json:"stubGenerator,omitempty"`
	InputDescription  string     `json:"inputDescription"`
	OutputDescription string     `json:"outputDescription"`
}

// UnmarshalJSON decodes the payload and assigns each test case its 1-based
// position, which the wire format does not carry.
func (d *Data) UnmarshalJSON(b []byte) error {
	type alias Data
	var a alias
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	for i := range a.TestCases {
		a.TestCases[i].Index = i + 1
	}
	*d = Data(a)
	return nil
}

// Parse decodes a puzzle from its raw JSON.
func Parse(raw []byte) (*Clash, error) {
	var c Clash
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Clash) Title() string             { return c.LastVersion.Data.Title }
func (c *Clash) Statement() string         { return c.LastVersion.Data.Statement }
func (c *Clash) Constraints() string       { return c.LastVersion.Data.Constraints }
func (c *Clash) StubGenerator() string     { return c.LastVersion.Data.StubGenerator }
func (c *Clash) InputDescription() string  { return c.LastVersion.Data.InputDescription }
func (c *Clash) OutputDescription() string { return c.LastVersion.Data.OutputDescription }
func (c *Clash) Testcases() []TestCase     { return c.LastVersion.Data.TestCases }

func (c *Clash) IsFastest() bool  { return c.LastVersion.Data.Fastest }
func (c *Clash) IsShortest() bool { return c.LastVersion.Data.Shortest }
func (c *Clash) IsReverse() bool  { return c.LastVersion.Data.Reverse }

// IsReverseOnly reports whether reverse is the only mode the puzzle
// supports, in which case the statement is hidden and players deduce the
// rules from the test cases.
func (c *Clash) IsReverseOnly() bool {
	d := c.LastVersion.Data
	return d.Reverse && !d.Fastest && !d.Shortest
}
