package setup

import (
	"context"
	"fmt"
	"strings"

	"fips/core/logger"
	"fips/core/sdk"
)

// Dispatcher routes a "setup" request to the installer registered under the
// requested SDK name.
type Dispatcher struct {
	console    *logger.Console
	installers map[string]sdk.Installer
	names      []string
}

// NewDispatcher creates a Dispatcher over installers, keyed by their Name.
// Registration order is the order used in help and error messages.
func NewDispatcher(console *logger.Console, installers ...sdk.Installer) *Dispatcher {
	d := &Dispatcher{
		console:    console,
		installers: make(map[string]sdk.Installer, len(installers)),
	}
	for _, inst := range installers {
		name := inst.Name()
		if _, dup := d.installers[name]; !dup {
			d.names = append(d.names, name)
		}
		d.installers[name] = inst
	}
	return d
}

// Names returns the accepted SDK names in registration order.
func (d *Dispatcher) Names() []string {
	return append([]string(nil), d.names...)
}

// Run installs the SDK named by args[0]. Names match exactly and
// case-sensitively. A missing or unknown name is reported on the console and
// Run returns nil without calling any installer. Installer errors are
// returned as is.
func (d *Dispatcher) Run(ctx context.Context, fipsDir, projDir string, args []string) error {
	var name string
	if len(args) > 0 {
		name = args[0]
	}

	inst, ok := d.installers[name]
	if !ok {
		d.console.Error(fmt.Sprintf("invalid SDK name (must be %s)", quoteList(d.names)))
		return nil
	}
	return inst.Setup(ctx, fipsDir, projDir)
}

// Help prints the usage block of the setup verb.
func (d *Dispatcher) Help() {
	lines := make([]string, len(d.names))
	for i, name := range d.names {
		lines[i] = "fips setup " + name
	}
	d.console.Info(d.console.Style(logger.Yellow, strings.Join(lines, "\n")) + "\n" +
		"    setup cross-platform SDK")
}

// quoteList renders names as 'a', 'b' or 'c'.
func quoteList(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = "'" + n + "'"
	}
	switch len(quoted) {
	case 0:
		return "none available"
	case 1:
		return quoted[0]
	default:
		return strings.Join(quoted[:len(quoted)-1], ", ") + " or " + quoted[len(quoted)-1]
	}
}
