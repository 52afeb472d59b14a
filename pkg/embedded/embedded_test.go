package embedded

import (
	"errors"
	"testing"
	"testing/fstest"
)

func resetForTest() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// TestIsInitialized 测试初始化状态检测
func TestIsInitialized(t *testing.T) {
	resetForTest()
	defer resetForTest()

	if IsInitialized() {
		t.Error("Expected IsInitialized() to return false before Init()")
	}

	Init(fstest.MapFS{}, fstest.MapFS{})

	if !IsInitialized() {
		t.Error("Expected IsInitialized() to return true after Init()")
	}
}

// TestReadFileNotInitialized 测试未初始化时调用 ReadFile
func TestReadFileNotInitialized(t *testing.T) {
	resetForTest()

	_, err := ReadFile("data/editor.yaml")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Expected ErrNotInitialized, got %v", err)
	}
	if _, err := Open("assets/images/tileset.png"); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Open: expected ErrNotInitialized, got %v", err)
	}
}

// TestPrefixRouting 测试路径前缀路由
func TestPrefixRouting(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(
		fstest.MapFS{"assets/images/a.png": {Data: []byte("png")}},
		fstest.MapFS{"data/editor.yaml": {Data: []byte("tile: {}")}},
	)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{name: "assets 路径", path: "assets/images/a.png", want: "png"},
		{name: "带 ./ 前缀", path: "./data/editor.yaml", want: "tile: {}"},
		{name: "data 中不存在的文件", path: "data/missing.yaml", wantErr: true},
		{name: "assets 路径不会路由到 data", path: "assets/editor.yaml", wantErr: true},
		{name: "未知前缀", path: "images/a.png", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadFile(%q) error: %v", tt.path, err)
			}
			if string(data) != tt.want {
				t.Errorf("ReadFile(%q) = %q, want %q", tt.path, data, tt.want)
			}
		})
	}
}

func TestExistsAndIsEmbeddedPath(t *testing.T) {
	resetForTest()
	defer resetForTest()

	Init(fstest.MapFS{"assets/images/a.png": {Data: []byte("png")}}, nil)

	if !Exists("assets/images/a.png") {
		t.Error("Exists should report true for an embedded file")
	}
	if Exists("assets/images/b.png") {
		t.Error("Exists should report false for a missing file")
	}
	if Exists("data/editor.yaml") {
		t.Error("Exists should report false when data filesystem is not set")
	}

	if !IsEmbeddedPath("./assets/x.png") || !IsEmbeddedPath("data/x.yaml") {
		t.Error("IsEmbeddedPath should accept assets/ and data/ prefixes")
	}
	if IsEmbeddedPath("/tmp/x.png") {
		t.Error("IsEmbeddedPath should reject OS paths")
	}
}
