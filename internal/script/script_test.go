package script

import (
	"strings"
	"testing"

	"topicboard/internal/store"
)

func TestParse_SkipsBlanksAndComments(t *testing.T) {
	src := `
# seed ops
add TypeScript

rename top-3 Foo
rm top-2
find java
`
	ops, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ops) != 4 {
		t.Fatalf("expected 4 ops, got %d: %+v", len(ops), ops)
	}
	if ops[0].Kind != OpAdd || ops[0].Arg != "TypeScript" {
		t.Fatalf("unexpected first op: %+v", ops[0])
	}
	if ops[1].Kind != OpRename || ops[1].ID != "top-3" || ops[1].Arg != "Foo" {
		t.Fatalf("unexpected rename op: %+v", ops[1])
	}
	if ops[2].Kind != OpRemove || ops[2].ID != "top-2" {
		t.Fatalf("unexpected rm op: %+v", ops[2])
	}
	if ops[3].Kind != OpFind || ops[3].Arg != "java" {
		t.Fatalf("unexpected find op: %+v", ops[3])
	}
}

func TestParse_NamesMayContainSpaces(t *testing.T) {
	ops, err := Parse(strings.NewReader("add Web  Components\nrename top-1 Modern HTML"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if ops[0].Arg != "Web  Components" {
		t.Fatalf("add arg: got %q", ops[0].Arg)
	}
	if ops[1].ID != "top-1" || ops[1].Arg != "Modern HTML" {
		t.Fatalf("rename op: %+v", ops[1])
	}
}

func TestParse_Errors(t *testing.T) {
	cases := []string{
		"delete top-1",   // unknown verb
		"add",            // missing name
		"rm",             // missing id
		"rm top-1 top-2", // too many args
		"rename top-1",   // missing name
	}
	for _, src := range cases {
		if _, err := Parse(strings.NewReader(src)); err == nil {
			t.Fatalf("expected parse error for %q", src)
		}
	}
}

func TestRun_EndToEndScenario(t *testing.T) {
	col := store.NewCollection(store.NewRandomIDSource(), store.Seed()[0].Topics)
	ops, err := Parse(strings.NewReader("add TypeScript\nrm top-2\nfind java"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	outcomes := Run(col, ops)
	if len(outcomes) != 3 {
		t.Fatalf("expected 3 outcomes, got %d", len(outcomes))
	}
	if !outcomes[0].Applied || outcomes[0].Topic == nil || outcomes[0].Topic.Name != "TypeScript" {
		t.Fatalf("add outcome: %+v", outcomes[0])
	}
	if !outcomes[1].Applied {
		t.Fatalf("rm outcome: %+v", outcomes[1])
	}
	if len(outcomes[2].Found) != 1 || outcomes[2].Found[0].Name != "JavaScript" {
		t.Fatalf("find outcome: %+v", outcomes[2])
	}

	topics := col.Topics()
	want := []string{"TypeScript", "HTML", "JavaScript", "React"}
	if len(topics) != len(want) {
		t.Fatalf("final collection: %+v", topics)
	}
	for i, w := range want {
		if topics[i].Name != w {
			t.Fatalf("final collection at %d: got %q, want %q", i, topics[i].Name, w)
		}
	}
}

func TestRun_ReportsRejects(t *testing.T) {
	col := store.NewCollection(store.NewRandomIDSource(), store.Seed()[0].Topics)
	ops, err := Parse(strings.NewReader("rm top-999\nadd ok"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	outcomes := Run(col, ops)
	if outcomes[0].Applied || outcomes[0].Reject != store.RejectUnknownID {
		t.Fatalf("expected unknown-id reject, got %+v", outcomes[0])
	}
	// A reject must not stop the script.
	if !outcomes[1].Applied {
		t.Fatalf("expected later op to still run, got %+v", outcomes[1])
	}
}
