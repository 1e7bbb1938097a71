package model

import (
	"encoding/json"
	"testing"
)

func TestItemFilterNormalize(t *testing.T) {
	f := ItemFilter{Category: FilterAll, Location: FilterAll, Status: FilterAll, Search: "all"}.Normalize()
	if f.Category != "" || f.Location != "" || f.Status != "" {
		t.Errorf("expected 'all' sentinels to be cleared, got %+v", f)
	}
	if f.Search != "all" {
		t.Errorf("search is free text and must be kept, got %q", f.Search)
	}
}

func TestItemPatchApply(t *testing.T) {
	img := "/uploads/a.jpg"
	item := &Item{Title: "Wallet", Status: ItemStatusLost, Image: &img, ContactInfo: "a@b.c"}

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"status":"Found","verified":true}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	patch.Apply(item)

	if item.Status != ItemStatusFound {
		t.Errorf("expected status Found, got %q", item.Status)
	}
	if !item.Verified {
		t.Error("expected verified to be set")
	}
	if item.Image == nil || *item.Image != img {
		t.Error("absent image must be left unchanged")
	}
	if item.Title != "Wallet" {
		t.Errorf("absent title must be left unchanged, got %q", item.Title)
	}
}

func TestItemPatchNullImage(t *testing.T) {
	img := "/uploads/a.jpg"
	item := &Item{Image: &img}

	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"image":null}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !patch.Image.Set {
		t.Fatal("explicit null must mark the image as set")
	}
	patch.Apply(item)
	if item.Image != nil {
		t.Errorf("expected image cleared, got %q", *item.Image)
	}
}

func TestItemPatchIgnoresOwnership(t *testing.T) {
	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"userId":"intruder","id":"x"}`), &patch); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !patch.Empty() {
		t.Error("identity fields must not be part of a patch")
	}
}
