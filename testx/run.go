package testx

import (
	"fmt"
	"testing"
)

func Name(i int) string {
	return fmt.Sprintf("test_#%03d", i)
}

// RunTests runs each test as a named subtest with its own Tx
func RunTests[TEST any](tx *Tx, tests []TEST, runFnc func(tx *Tx, test TEST)) {
	for i, test := range tests {
		tx.T().Run(Name(i), func(t *testing.T) {
			runFnc(NewTx(t), test)
		})
	}
}
