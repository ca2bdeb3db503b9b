package install

import "os"

// RegistryStatus describes one registry directory.
type RegistryStatus struct {
	Registry Registry
	Dir      string
	Exists   bool
	// OnPath is only meaningful for the CLI registry.
	OnPath  bool
	Entries int
	Err     error
}

// Status represents the state of both registries and the PowerShell interpreter.
type Status struct {
	Registries       []RegistryStatus
	Interpreter      string
	InterpreterPath  string
	InterpreterFound bool
}

// GetStatus inspects the registries and the interpreter. Lookup failures are
// reported per registry instead of aborting.
func (in *Installer) GetStatus() *Status {
	st := &Status{Interpreter: in.env.Interpreter}
	for _, reg := range Registries() {
		rs := RegistryStatus{Registry: reg}
		dir, err := in.Dir(reg)
		if err != nil {
			rs.Err = err
			st.Registries = append(st.Registries, rs)
			continue
		}
		rs.Dir = dir
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			rs.Exists = true
		}
		if reg == Cli {
			rs.OnPath = in.OnPath(dir)
		}
		if entries, err := in.listDir(dir); err == nil {
			rs.Entries = len(entries)
		} else {
			rs.Err = err
		}
		st.Registries = append(st.Registries, rs)
	}
	if p, err := in.Interpreter(); err == nil {
		st.InterpreterPath = p
		st.InterpreterFound = true
	}
	return st
}
