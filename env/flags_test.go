package env

import (
	"reflect"
	"testing"
)

func TestFlags(t *testing.T) {
	tests := map[string]struct {
		args     []string
		expFlags map[string]any
	}{
		"test_01": {
			args: []string{
				"-foo=bar",
			},
			expFlags: map[string]any{
				"foo": "bar",
			},
		},
		"test_02": {
			args: []string{
				"--foo=bar",
			},
			expFlags: map[string]any{
				"foo": "bar",
			},
		},
		"test_03": {
			args: []string{
				"-foo", "bar",
			},
			expFlags: map[string]any{
				"foo": "bar",
			},
		},
		"test_04": {
			args: []string{
				"--foo", "bar",
			},
			expFlags: map[string]any{
				"foo": "bar",
			},
		},
		"test_05": {
			args: []string{
				"-bbar",
			},
			expFlags: map[string]any{
				"bbar": true,
			},
		},
		"test_06": {
			args: []string{
				"--bbar",
			},
			expFlags: map[string]any{
				"bbar": true,
			},
		},
		"test_07": {
			args: []string{
				"--bbar", "-foo=baz", "--wop", "22",
			},
			expFlags: map[string]any{
				"bbar": true,
				"foo":  "baz",
				"wop":  "22",
			},
		},
		"test_08": {
			args: []string{
				"--wop", "22", "-foo=baz", "--bbar",
			},
			expFlags: map[string]any{
				"bbar": true,
				"foo":  "baz",
				"wop":  "22",
			},
		},
		"test_09": {
			args: []string{
				"--wop", "22", "-foo=baz", "vamos", "--bbar",
			},
			expFlags: map[string]any{
				"bbar": true,
				"foo":  "baz",
				"wop":  "22",
			},
		},
		"test_10": {
			args: []string{
				"-shift", "-5", "--values=-1,2", "-scale", "-0.5",
			},
			expFlags: map[string]any{
				"shift":  "-5",
				"values": "-1,2",
				"scale":  "-0.5",
			},
		},
		"test_11": {
			args: []string{
				"-inf", "-infinity=1", "-offset", "-.5", "--nan",
			},
			expFlags: map[string]any{
				"inf":      true,
				"infinity": "1",
				"offset":   "-.5",
				"nan":      true,
			},
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			res := ParseFlags(test.args)
			if !reflect.DeepEqual(test.expFlags, res) {
				t.Fatalf("want %v, have %v", test.expFlags, res)
			}
		})
	}
}
