package utils

import (
	"testing"
	"time"
)

func TestCacheSetGetExpire(t *testing.T) {
	c := GetCache()

	c.Set("k", "v", time.Minute)
	if got := c.Get("k"); got != "v" {
		t.Errorf("Get = %v, want v", got)
	}

	c.Set("short", "gone", -time.Second)
	if got := c.Get("short"); got != nil {
		t.Errorf("Expired entry still served: %v", got)
	}

	c.Delete("k")
	if got := c.Get("k"); got != nil {
		t.Errorf("Deleted entry still served: %v", got)
	}
}
