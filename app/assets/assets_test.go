package assets

import (
	"bytes"
	"testing"
	"testing/fstest"
)

func TestGetIcon_ReturnsIconData(t *testing.T) {
	original := Icons
	defer func() { Icons = original }()

	Icons = fstest.MapFS{
		"icon1.ico": &fstest.MapFile{Data: []byte{0x00, 0x01, 0x02}},
	}

	data, err := GetIcon("icon1.ico")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedData := []byte{0x00, 0x01, 0x02}
	if !bytes.Equal(data, expectedData) {
		t.Errorf("Expected %v, got %v", expectedData, data)
	}
}

func TestListIcons_MultipleIcons(t *testing.T) {
	original := Icons
	defer func() { Icons = original }()

	Icons = fstest.MapFS{
		"icon1.ico": &fstest.MapFile{Data: []byte("icon1 data")},
		"icon2.ico": &fstest.MapFile{Data: []byte("icon2 data")},
		"icon3.ico": &fstest.MapFile{Data: []byte("icon3 data")},
	}

	iconsList, err := ListIcons()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expectedMap := map[string]bool{
		"icon1.ico": true,
		"icon2.ico": true,
		"icon3.ico": true,
	}
	for _, name := range iconsList {
		if !expectedMap[name] {
			t.Errorf("Unexpected icon name: %s", name)
		}
		delete(expectedMap, name)
	}
	if len(expectedMap) != 0 {
		t.Errorf("Missing icons: %v", expectedMap)
	}
}

func TestEmbeddedTrayIconsPresent(t *testing.T) {
	for _, name := range []string{"tray.ico", "tray.png"} {
		data, err := GetIcon(name)
		if err != nil {
			t.Fatalf("Expected %s to be embedded, got %v", name, err)
		}
		if len(data) == 0 {
			t.Errorf("Expected %s to be non-empty", name)
		}
	}
}
