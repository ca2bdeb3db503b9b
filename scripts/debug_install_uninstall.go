// Debug helper for testing install/uninstall flows against throwaway registries.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/VoxDroid/s4/internal/install"
	"github.com/VoxDroid/s4/internal/logging"
)

func main() {
	logging.Setup(logging.Options{Verbosity: 1})
	defer func() { _ = logging.Close() }()

	tmp, err := os.MkdirTemp("", "debuginstall")
	if err != nil {
		panic(err)
	}
	defer func() { _ = os.RemoveAll(tmp) }()

	src := filepath.Join(tmp, "tools", "build.ps1")
	_ = os.MkdirAll(filepath.Dir(src), 0o755)
	_ = os.WriteFile(src, []byte("Write-Host 'hello from s4'\n"), 0o644)

	in := install.New(install.Env{
		Dirs:    install.HomeDirs{CLI: filepath.Join(tmp, "cli"), SendTo: filepath.Join(tmp, "sendto")},
		PathEnv: os.Getenv("PATH"),
		PathExt: os.Getenv("PATHEXT"),
	})

	for _, typ := range install.Types() {
		for _, reg := range install.Registries() {
			res, err := in.Install(install.Request{Type: typ, Registry: reg, Source: src})
			if err != nil {
				fmt.Printf("install %s/%s err: %v\n", typ, reg, err)
				continue
			}
			fmt.Printf("install %s/%s -> %s\n", typ, reg, res.Destination)
		}
	}

	for _, reg := range install.Registries() {
		entries, err := in.List(reg)
		fmt.Printf("%s entries (err: %v):\n", reg, err)
		for _, e := range entries {
			fmt.Printf(" - %s [%s] %s\n", e.Name, e.Kind, e.Target)
		}
		for _, e := range entries {
			res, err := in.Uninstall(reg, e.Name)
			if err != nil {
				fmt.Println("uninstall err:", err)
				continue
			}
			fmt.Println("removed:", res.Removed)
		}
		dir, _ := in.Dir(reg)
		ents, _ := os.ReadDir(dir)
		if len(ents) == 0 {
			fmt.Printf("%s empty as expected\n", dir)
		} else {
			for _, e := range ents {
				fmt.Println(" - leftover entry:", e.Name())
			}
		}
	}
}
