package models

import (
	"reflect"
	"testing"
)

func TestSongHasCategory(t *testing.T) {
	s := &Song{Categories: []string{"Pop", "Hip Hop"}}

	if !s.HasCategory("Pop") {
		t.Error("expected Pop to match")
	}
	if s.HasCategory("pop") {
		t.Error("category match must be case-sensitive")
	}
	if s.HasCategory("Hip") {
		t.Error("partial names must not match")
	}
}

func TestTopSongRow(t *testing.T) {
	ts := TopSong{Title: "Hit", ViewCount: 1234567, Channel: "Chan"}

	if got, want := ts.Columns(), []string{"title", "view_count", "channel"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Columns: got %q, want %q", got, want)
	}
	if got, want := ts.Values(), []string{"Hit", "1234567", "Chan"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Values: got %q, want %q", got, want)
	}
}
