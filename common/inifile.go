// Optional per-user defaults from ~/.jobinfo, an ini file with a single
// [jobinfo] section.  Command-line arguments always win over these.

package common

import (
	"errors"
	"os"
	"path"

	ini "github.com/lars-t-hansen/ini"
)

// MT: Constant after initialization
var (
	p                 = ini.NewParser()
	store             *ini.Store
	jobinfoSection    = p.AddSection("jobinfo")
	DefaultConfigFile = jobinfoSection.AddString("config")
	DefaultPrometheus = jobinfoSection.AddString("prometheus")
	DefaultVerbose    = jobinfoSection.AddString("verbose")
)

func init() {
	home := os.Getenv("HOME")
	if home == "" {
		return
	}
	fn := path.Join(path.Clean(home), ".jobinfo")
	input, err := os.Open(fn)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			Log.Errorf("Error in trying to open %s: %s", fn, err.Error())
		}
		return
	}
	defer input.Close()
	store, err = p.Parse(input)
	if err != nil {
		Log.Errorf("Error in trying to parse %s: %s", fn, err.Error())
		return
	}
}

func HasDefault(f *ini.Field) bool {
	return store != nil && f.Present(store)
}

func ApplyDefault(sp *string, f *ini.Field) bool {
	if *sp != "" || store == nil || !f.Present(store) {
		return false
	}
	*sp = os.ExpandEnv(f.StringVal(store))
	return true
}
