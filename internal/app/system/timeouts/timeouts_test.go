package timeouts

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	Reset()
	if Ping() != DefaultPing || Short() != DefaultShort || Medium() != DefaultMedium {
		t.Errorf("defaults = %v/%v/%v", Ping(), Short(), Medium())
	}
}

// Zero values in the config leave the other tiers untouched.
func TestConfigurePartial(t *testing.T) {
	Reset()
	defer Reset()

	Configure(Config{Short: 3 * time.Second})
	if Short() != 3*time.Second {
		t.Errorf("Short() = %v", Short())
	}
	if Ping() != DefaultPing || Medium() != DefaultMedium {
		t.Errorf("untouched tiers changed: %v/%v", Ping(), Medium())
	}
}
