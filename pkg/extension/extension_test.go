package extension

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"ga4gh/pkg/validation"
)

func TestFromRaw_Shapes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want Value
	}{
		{"string", "hello", String("hello")},
		{"bool", true, Bool(true)},
		{"float", 2.5, Number(2.5)},
		{"int", 7, Number(7)},
		{"nil", nil, nil},
		{"list", []any{"a", 1.0}, List{String("a"), Number(1)}},
		{"object", map[string]any{"k": false}, Object{"k": Bool(false)}},
		{
			"nested",
			map[string]any{"items": []any{map[string]any{"n": 1.0}}},
			Object{"items": List{Object{"n": Number(1)}}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromRaw(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestFromRaw_UnsupportedShape(t *testing.T) {
	_, err := FromRaw(struct{ X int }{1})
	require.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = FromRaw([]any{"fine", make(chan int)})
	require.ErrorIs(t, err, ErrUnsupportedValue)

	_, err = FromRaw(map[string]any{"bad": func() {}})
	require.ErrorIs(t, err, ErrUnsupportedValue)
}

func TestFromRaw_DeepCopiesContainers(t *testing.T) {
	source := map[string]any{"list": []any{"a"}}
	value, err := FromRaw(source)
	require.NoError(t, err)

	source["list"].([]any)[0] = "mutated"
	require.Equal(t, Object{"list": List{String("a")}}, value)
}

func TestClone_Isolation(t *testing.T) {
	original := Object{"nested": List{Number(1), Number(2)}}
	copied := Clone(original).(Object)

	copied["nested"].(List)[0] = Number(99)
	require.Equal(t, Number(1), original["nested"].(List)[0])
}

func TestObject_KeysSorted(t *testing.T) {
	o := Object{"zeta": Number(1), "alpha": Number(2), "mid": Number(3)}
	require.Equal(t, []string{"alpha", "mid", "zeta"}, o.Keys())
}

func TestRaw_RoundTrip(t *testing.T) {
	value := Object{"s": String("x"), "list": List{Bool(true), Number(4)}}
	raw := Raw(value)
	back, err := FromRaw(raw)
	require.NoError(t, err)
	require.Equal(t, value, back)
}

func TestNew(t *testing.T) {
	e, err := New("civic_actionability_score", 4.5)
	require.NoError(t, err)
	require.Equal(t, TypeExtension, e.Type)
	require.Equal(t, Number(4.5), e.Value)
	require.NoError(t, e.Validate())

	_, err = New("", "anything")
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleFormat})

	_, err = New("bad", make(chan int))
	require.Error(t, err)
}

func TestExtension_Validate(t *testing.T) {
	e := &Extension{Type: "NotExtension", Name: "n"}
	require.ErrorIs(t, e.Validate(), &validation.Error{Rule: validation.RuleDiscriminator})

	e = &Extension{Type: TypeExtension, Name: ""}
	require.ErrorIs(t, e.Validate(), &validation.Error{Rule: validation.RuleFormat})
}

func TestExtension_JSONRoundTrip(t *testing.T) {
	e, err := New("supporting_ids", []any{"pmid:123", "pmid:456"})
	require.NoError(t, err)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "Extension",
		"name": "supporting_ids",
		"value": ["pmid:123", "pmid:456"]
	}`, string(data))

	var back Extension
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, *e, back)
}

func TestExtension_UnmarshalRejectsWrongTag(t *testing.T) {
	var e Extension
	err := json.Unmarshal([]byte(`{"type": "Gene", "name": "n"}`), &e)
	require.ErrorIs(t, err, &validation.Error{Rule: validation.RuleDiscriminator})
}
