package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
	maxFuzzInput = 1 << 16
)

// languageSeeds покрывают каждую конструкцию языка и типичные ошибки.
var languageSeeds = []string{
	"int x = 1 + 2 * 3;",
	"bool b = !(1 < 2) && true || false;",
	"string s = \"a\\tb\\n\\\"q\\\"\\\\\";",
	"int f(int a, bool b) { if (b) { return a; } else { return -a; } }",
	"for (int i = 0; i < 10; i += 1) { if (i == 3) { continue; } break; }",
	"for (;;) { }",
	"while (x != 0) { x -= 1; }",
	"void g() { return; }",
	"x = y = 1;",
	"int h = 0x1F ^ 0b1010 | 017 >> 1;",
	"f(g(1), (2));",
	"int x = 1\nint y = 2;",
	"int x = ;",
	"void f( { }",
	"int x = (1 + 2;",
	"break;",
	"}",
	"string s = \"open",
	"/* open comment",
	"int 9x = 1;",
	"int big = 99999999999999999999;",
	"@ # $ `",
	"int x = 1 @ int y;",
	"if (x)\n",
	"if(0) ",
	"while (x)   ",
	"for (;;)\n",
	"if (x) y = 1; else\n",
	"x = 1 y = 2;",
	"int main() { x = 1 y = 2; return y; }",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range languageSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.o2 файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".o2" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src, maxSeedBytes))
		return nil
	})
}

func clamp(src []byte, limit int) []byte {
	if len(src) <= limit {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:limit]...)
}
