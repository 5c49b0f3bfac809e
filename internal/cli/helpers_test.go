package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/vaxscheduler/internal/config"
	"github.com/dmitrijs2005/vaxscheduler/internal/logging"
	"github.com/dmitrijs2005/vaxscheduler/internal/repositories/repomanager"
)

// captureOutput swaps the output seams for the duration of the test and
// returns the printed lines. Prompts are dropped.
func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var out []string

	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) {
		out = append(out, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	printFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })

	return &out
}

func newTestApp(t *testing.T, loginsPerMinute int) *App {
	t.Helper()
	cfg := &config.Config{
		StorageMode:            config.StorageMemory,
		CommandTimeout:         time.Second,
		LoginAttemptsPerMinute: loginsPerMinute,
	}
	return newApp(cfg, nil, repomanager.NewMemoryRepositoryManager(), NewSession(loginsPerMinute), logging.Discard())
}

func stubPassword(t *testing.T, pw string, err error) {
	t.Helper()
	orig := getPassword
	getPassword = func() ([]byte, error) {
		if err != nil {
			return nil, err
		}
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}
