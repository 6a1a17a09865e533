package env

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	dotEnvFile     = ".env"
	dotEnvFileToml = ".env.toml"
)

func loadDotenv(path string) (map[string]any, error) {
	vs := map[string]any{}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		k, v, _ := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		v = unquote(strings.TrimSpace(v))
		if v == "" {
			vs[k] = true
		} else {
			vs[k] = v
		}
	}
	return vs, scanner.Err()
}

func loadDotenvToml(path string) (map[string]any, error) {
	vs := map[string]any{}
	_, err := toml.DecodeFile(path, &vs)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// LoadDotenv looks up .env files starting at the working directory.
func LoadDotenv() map[string]any {
	wd, err := os.Getwd()
	if err != nil {
		return map[string]any{}
	}
	return LoadDotenvFrom(wd)
}

// LoadDotenvFrom looks up ".env" and ".env.toml" (decoded as toml) in dir and all its parents.
// Values found closer to dir win; within a directory ".env" wins over ".env.toml".
func LoadDotenvFrom(dir string) map[string]any {
	all := map[string]any{}
	dir, err := filepath.Abs(dir)
	if err != nil {
		return all
	}
	keep := func(vs map[string]any) {
		for k, v := range vs {
			if _, ok := all[k]; !ok {
				all[k] = v
			}
		}
	}
	for {
		if vs, err := loadDotenv(filepath.Join(dir, dotEnvFile)); err == nil {
			keep(vs)
		}
		if vs, err := loadDotenvToml(filepath.Join(dir, dotEnvFileToml)); err == nil {
			keep(vs)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return all
}
