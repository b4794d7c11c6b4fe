// Package script parses and runs op scripts: a line-oriented format for
// driving the collection editor without the TUI.
//
//	# comment
//	add TypeScript
//	rename top-3 Foo
//	rm top-2
//	find java
package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"topicboard/internal/model"
	"topicboard/internal/store"
)

type OpKind string

const (
	OpAdd    OpKind = "add"
	OpRemove OpKind = "rm"
	OpRename OpKind = "rename"
	OpFind   OpKind = "find"
)

// Op is one parsed script line.
type Op struct {
	Line int    `json:"line"`
	Kind OpKind `json:"op"`
	ID   string `json:"id,omitempty"`  // rm, rename
	Arg  string `json:"arg,omitempty"` // add/rename: name; find: query
}

// Parse reads a script. Blank lines and '#' comments are skipped.
// Unknown verbs and malformed lines are errors: scripts are programs,
// not UI input, so they fail loudly instead of no-opping.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}

		verb, rest, _ := strings.Cut(raw, " ")
		rest = strings.TrimSpace(rest)
		switch OpKind(verb) {
		case OpAdd:
			if rest == "" {
				return nil, fmt.Errorf("line %d: add needs a name", line)
			}
			ops = append(ops, Op{Line: line, Kind: OpAdd, Arg: rest})
		case OpRemove:
			if rest == "" || strings.ContainsAny(rest, " \t") {
				return nil, fmt.Errorf("line %d: rm needs exactly one id", line)
			}
			ops = append(ops, Op{Line: line, Kind: OpRemove, ID: rest})
		case OpRename:
			id, name, ok := strings.Cut(rest, " ")
			name = strings.TrimSpace(name)
			if !ok || id == "" || name == "" {
				return nil, fmt.Errorf("line %d: rename needs an id and a name", line)
			}
			ops = append(ops, Op{Line: line, Kind: OpRename, ID: id, Arg: name})
		case OpFind:
			// Empty query is allowed: it lists the whole collection.
			ops = append(ops, Op{Line: line, Kind: OpFind, Arg: rest})
		default:
			return nil, fmt.Errorf("line %d: unknown op %q", line, verb)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ops, nil
}

// Outcome records what one op did. Rejected mutations are reported, not
// swallowed: `reject` carries the reason and `applied` stays false.
type Outcome struct {
	Line    int                `json:"line"`
	Op      OpKind             `json:"op"`
	Applied bool               `json:"applied"`
	Reject  store.RejectReason `json:"reject,omitempty"`
	Topic   *model.Topic       `json:"topic,omitempty"`
	Found   []model.Topic      `json:"found,omitempty"`
}

// Run applies ops to the collection in order and reports one outcome
// per op. Rejections don't stop the script.
func Run(col *store.Collection, ops []Op) []Outcome {
	outcomes := make([]Outcome, 0, len(ops))
	for _, op := range ops {
		out := Outcome{Line: op.Line, Op: op.Kind}
		switch op.Kind {
		case OpAdd:
			res := col.Create(op.Arg)
			out.Applied = res.Changed
			out.Reject = res.Reject
			out.Topic = res.Topic
		case OpRemove:
			res := col.Delete(op.ID)
			out.Applied = res.Changed
			out.Reject = res.Reject
		case OpRename:
			res := col.Rename(op.ID, op.Arg)
			out.Applied = res.Changed
			out.Reject = res.Reject
			out.Topic = res.Topic
		case OpFind:
			out.Applied = true
			out.Found = col.Filter(op.Arg)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}
