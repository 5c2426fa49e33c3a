package config

import "testing"

func TestLoad_MalformedClockFallsBackToDefault(t *testing.T) {
	t.Setenv("OPEN_TIME", "banana")
	t.Setenv("CLOSE_TIME", "25:99")

	cfg := Load()

	if cfg.OpenTime != "09:00" {
		t.Errorf("OpenTime = %q, esperado 09:00", cfg.OpenTime)
	}
	if cfg.CloseTime != "19:00" {
		t.Errorf("CloseTime = %q, esperado 19:00", cfg.CloseTime)
	}
}

func TestLoad_ValidClockIsKept(t *testing.T) {
	t.Setenv("OPEN_TIME", "08:30")
	t.Setenv("CLOSE_TIME", "20:00")

	cfg := Load()

	if cfg.OpenTime != "08:30" {
		t.Errorf("OpenTime = %q, esperado 08:30", cfg.OpenTime)
	}
	if cfg.CloseTime != "20:00" {
		t.Errorf("CloseTime = %q, esperado 20:00", cfg.CloseTime)
	}
}
