package rendering

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// EngineLocator finds the typesetting engine binary on the host machine.
// Implementations return the absolute path to a pdflatex executable, or a
// *MissingEngineError when none can be found.
type EngineLocator interface {
	Locate() (string, error)
}

// PathLocator locates pdflatex via PATH, then a small set of well-known
// install directories for the current platform. ExtraDirs are searched first.
type PathLocator struct {
	ExtraDirs []string
}

// Locate returns the pdflatex executable path
func (l *PathLocator) Locate() (string, error) {
	if path, err := exec.LookPath(engineBinary()); err == nil {
		return path, nil
	}

	searched := append([]string{}, l.ExtraDirs...)
	searched = append(searched, wellKnownEngineDirs()...)

	for _, dir := range searched {
		candidate := filepath.Join(dir, engineBinary())
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", &MissingEngineError{Searched: searched}
}

func engineBinary() string {
	if runtime.GOOS == "windows" {
		return "pdflatex.exe"
	}
	return "pdflatex"
}

// wellKnownEngineDirs lists the usual TeX distribution install locations
// for the current platform.
func wellKnownEngineDirs() []string {
	switch runtime.GOOS {
	case "windows":
		dirs := []string{
			`C:\Program Files\MiKTeX\miktex\bin\x64`,
			`C:\Program Files (x86)\MiKTeX\miktex\bin`,
			`C:\MiKTeX\miktex\bin\x64`,
		}
		if username := os.Getenv("USERNAME"); username != "" {
			dirs = append(dirs, filepath.Join(`C:\Users`, username, `AppData\Local\Programs\MiKTeX\miktex\bin\x64`))
		}
		return dirs
	case "darwin":
		return []string{
			"/Library/TeX/texbin",
			"/usr/local/texlive/bin",
		}
	default:
		return []string{
			"/usr/local/texlive/bin",
			"/usr/local/bin",
			"/opt/texlive/bin",
		}
	}
}
