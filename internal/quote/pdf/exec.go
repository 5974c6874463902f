package pdf

import (
	"fmt"
	"os"
	"runtime"
)

// statFile is swapped in tests to control which candidates "exist".
var statFile = os.Stat

// resolveExecPath picks the browser executable. An explicit override is
// trusted as-is; otherwise well-known install locations for the current
// platform are probed in order.
func resolveExecPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}

	candidates := execCandidates(runtime.GOOS)
	for _, path := range candidates {
		if _, err := statFile(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no chrome/chromium executable found (tried %d locations, set CAFECANVAS_CHROME_PATH)", len(candidates))
}

func execCandidates(goos string) []string {
	switch goos {
	case "darwin":
		return []string{
			"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
			"/Applications/Chromium.app/Contents/MacOS/Chromium",
		}
	case "windows":
		return []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
	default:
		return []string{
			"/usr/bin/google-chrome",
			"/usr/bin/google-chrome-stable",
			"/usr/bin/chromium",
			"/usr/bin/chromium-browser",
			"/usr/bin/headless-chromium",
		}
	}
}
