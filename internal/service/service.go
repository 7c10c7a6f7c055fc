package service

import (
	"strings"
	"time"
)

// now is swapped in tests that need a fixed clock.
var now = time.Now

func blank(s string) bool { return strings.TrimSpace(s) == "" }
