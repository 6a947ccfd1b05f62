package config

import (
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"creaturecapture/internal/pokeapi"
)

func TestDefault(t *testing.T) {
	c := Default()

	if c.BaseURL != pokeapi.DefaultBaseURL {
		t.Errorf("Expected base URL %s, got %s", pokeapi.DefaultBaseURL, c.BaseURL)
	}
	if c.ScreenWidth != DefaultScreenWidth || c.ScreenHeight != DefaultScreenHeight {
		t.Errorf("Expected %dx%d, got %dx%d", DefaultScreenWidth, DefaultScreenHeight, c.ScreenWidth, c.ScreenHeight)
	}
	if c.StartID != 1 {
		t.Errorf("Expected start 1, got %d", c.StartID)
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Defaults should validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	c, err := Parse([]string{
		"-height", "800",
		"-width", "480",
		"-start", "25",
		"-lang", "ru",
		"-timeout", "3s",
		"-log-level", "debug",
		"-base-url", "http://localhost:8080/api/v2",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if c.ScreenHeight != 800 || c.ScreenWidth != 480 {
		t.Errorf("Expected 480x800, got %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.StartID != 25 {
		t.Errorf("Expected start 25, got %d", c.StartID)
	}
	if c.Language != "ru" {
		t.Errorf("Expected ru, got %s", c.Language)
	}
	if c.Timeout != 3*time.Second {
		t.Errorf("Expected 3s timeout, got %s", c.Timeout)
	}
	if level, _ := c.Level(); level != slog.LevelDebug {
		t.Errorf("Expected debug level, got %s", level)
	}
	if c.BaseURL != "http://localhost:8080/api/v2" {
		t.Errorf("Unexpected base URL %s", c.BaseURL)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string][]string{
		"zero start":    {"-start", "0"},
		"negative size": {"-height", "-1"},
		"bad level":     {"-log-level", "loud"},
		"bad url":       {"-base-url", "ftp://example.com"},
		"unknown flag":  {"-nope"},
	}
	for name, args := range cases {
		if _, err := Parse(args, io.Discard); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	c := Default()
	c.StartID = 0
	c.Timeout = -time.Second

	err := c.Validate()
	if err == nil {
		t.Fatal("Expected error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "start identifier") || !strings.Contains(msg, "timeout") {
		t.Errorf("Expected both problems reported, got %q", msg)
	}
}
