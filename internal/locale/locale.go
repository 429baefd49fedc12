package locale

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// supported lists the dialog languages in matcher priority order; Korean
// is the product default, English the fallback.
var supported = []language.Tag{
	language.Korean,
	language.English,
}

var matcher = language.NewMatcher(supported)

type messages struct {
	launcherTitle  string
	securityTitle  string
	errorTitle     string
	alreadyRunning string
	fileNotFound   string
	integrityShort string
	integrityLong  string
	launchFailed   string
}

// Catalogs are indexed in the same order as supported.
var catalogs = []messages{
	{
		launcherTitle:  "런처",
		securityTitle:  "보안 경고",
		errorTitle:     "에러",
		alreadyRunning: "이미 프로그램이 실행 중입니다.",
		fileNotFound:   "%s를 찾을 수 없습니다.",
		integrityShort: "%s의 무결성 검증에 실패했습니다.",
		integrityLong:  "%s의 무결성 검증에 실패했습니다.\n설치가 잘못되거나 변조되었을 가능성이 있습니다.",
		launchFailed:   "%s 실행에 실패했습니다.",
	},
	{
		launcherTitle:  "Launcher",
		securityTitle:  "Security Warning",
		errorTitle:     "Error",
		alreadyRunning: "The program is already running.",
		fileNotFound:   "%s could not be found.",
		integrityShort: "Integrity verification of %s failed.",
		integrityLong:  "Integrity verification of %s failed.\nThe installation may be corrupted or tampered with.",
		launchFailed:   "Failed to start %s.",
	},
}

// Catalog renders user-facing dialog strings for one selected language.
type Catalog struct {
	tag language.Tag
	msg messages
}

// New selects the message catalog for the preferred language. An empty
// preference consults the locale environment; anything unmatched falls
// back to Korean, the product default.
func New(preferred string) *Catalog {
	prefs := []string{}
	if p := strings.TrimSpace(preferred); p != "" {
		prefs = append(prefs, p)
	} else {
		prefs = append(prefs, envLanguages()...)
	}

	tags := make([]language.Tag, 0, len(prefs))
	for _, pref := range prefs {
		if tag, err := language.Parse(pref); err == nil {
			tags = append(tags, tag)
		}
	}

	_, index, _ := matcher.Match(tags...)
	return &Catalog{tag: supported[index], msg: catalogs[index]}
}

// envLanguages extracts language preferences from the conventional locale
// environment variables, most specific first.
func envLanguages() []string {
	var prefs []string
	for _, key := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.TrimSpace(os.Getenv(key))
		if value == "" || value == "C" || value == "POSIX" {
			continue
		}
		for _, part := range strings.Split(value, ":") {
			if i := strings.IndexAny(part, ".@"); i >= 0 {
				part = part[:i]
			}
			part = strings.ReplaceAll(part, "_", "-")
			if part != "" {
				prefs = append(prefs, part)
			}
		}
	}
	return prefs
}

// Language returns the BCP 47 tag of the selected catalog.
func (c *Catalog) Language() string {
	return c.tag.String()
}

// LauncherTitle is the dialog title for informational messages.
func (c *Catalog) LauncherTitle() string { return c.msg.launcherTitle }

// SecurityTitle is the dialog title for integrity failures.
func (c *Catalog) SecurityTitle() string { return c.msg.securityTitle }

// ErrorTitle is the dialog title for launch failures.
func (c *Catalog) ErrorTitle() string { return c.msg.errorTitle }

// AlreadyRunning is shown when the single-instance guard rejects a run.
func (c *Catalog) AlreadyRunning() string {
	return c.msg.alreadyRunning
}

// FileNotFound is shown when a verified target is missing.
func (c *Catalog) FileNotFound(file string) string {
	return fmt.Sprintf(c.msg.fileNotFound, file)
}

// IntegrityFailed is shown on digest mismatch. The primary target carries
// the longer explanation, matching the original dialogs.
func (c *Catalog) IntegrityFailed(file string, detailed bool) string {
	if detailed {
		return fmt.Sprintf(c.msg.integrityLong, file)
	}
	return fmt.Sprintf(c.msg.integrityShort, file)
}

// LaunchFailed is shown when process creation fails.
func (c *Catalog) LaunchFailed(file string) string {
	return fmt.Sprintf(c.msg.launchFailed, file)
}
