// Package compiler drives the Source 2 resourcecompiler over generated
// .vmf documents.
package compiler

import (
	"os"
	"os/exec"
	"path/filepath"
)

// ResourceCompiler builds compile commands for the resourcecompiler
// binary shipped with Half-Life: Alyx. It satisfies process.CreateCMD.
type ResourceCompiler struct {
	// Path is the absolute path of the resourcecompiler executable,
	// e.g. <install>/game/bin/win64/resourcecompiler.exe.
	Path string
}

// CreateCMD builds the compile command for one .vmf file. The -f flag
// forces recompilation even when the compiler considers the output up
// to date. VPROJECT must point at the addon content root and the
// working directory must be the compiler's own bin directory, or the
// compiler refuses to resolve the input.
func (rc ResourceCompiler) CreateCMD(vmfPath string) *exec.Cmd {
	cmd := exec.Command(rc.Path, "-f", vmfPath)
	cmd.Dir = filepath.Dir(rc.Path)
	cmd.Env = append(os.Environ(), "VPROJECT="+ContentRoot(rc.Path))
	return cmd
}

// ContentRoot derives the content root the compiler expects in
// VPROJECT from the location of the binary itself. The binary lives in
// <install>/game/bin/<platform>, user content in <install>/content.
func ContentRoot(compilerPath string) string {
	binDir := filepath.Dir(compilerPath)
	installDir := filepath.Dir(filepath.Dir(filepath.Dir(binDir)))
	return filepath.Join(installDir, "content")
}

// IsWorking reports whether the configured binary exists and can be
// invoked.
func (rc ResourceCompiler) IsWorking() bool {
	if rc.Path == "" {
		return false
	}
	info, err := os.Stat(rc.Path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
