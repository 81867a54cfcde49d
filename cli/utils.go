package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addStoreFlags registers the flags that select and locate the post store.
func addStoreFlags(fs *pflag.FlagSet) {
	fs.String("driver", "", "Post store driver: memory, postgres, sqlite or redis")
	fs.String("sqlite-path", "", "SQLite database file")
	fs.String("db-conn-string", "", "PostgreSQL connection string")
}

// extractCLIFlags maps explicitly set flags onto their dotted config paths.
func extractCLIFlags(cmd *cobra.Command) map[string]any {
	getString := func(name string) (any, error) { return cmd.Flags().GetString(name) }
	getInt := func(name string) (any, error) { return cmd.Flags().GetInt(name) }
	getBool := func(name string) (any, error) { return cmd.Flags().GetBool(name) }
	flagDefs := []struct {
		flagName string
		key      string
		getter   func(string) (any, error)
	}{
		{"log-level", "runtime.log_level", getString},
		{"log-json", "runtime.log_json", getBool},
		{"host", "server.host", getString},
		{"port", "server.port", getInt},
		{"driver", "store.driver", getString},
		{"seed", "store.seed", getBool},
		{"sqlite-path", "sqlite.path", getString},
		{"db-conn-string", "database.conn_string", getString},
		{"redis-url", "redis.url", getString},
	}
	flags := make(map[string]any)
	for _, def := range flagDefs {
		if cmd.Flags().Lookup(def.flagName) == nil || !cmd.Flags().Changed(def.flagName) {
			continue
		}
		if value, err := def.getter(def.flagName); err == nil {
			flags[def.key] = value
		}
	}
	return flags
}

// loadEnvFile loads the --env-file into the process environment. A missing
// file is not an error; a path outside the working directory is.
func loadEnvFile(cmd *cobra.Command) (string, error) {
	envFile, err := cmd.Flags().GetString("env-file")
	if err != nil {
		return "", fmt.Errorf("failed to get env-file flag: %w", err)
	}
	if envFile == "" {
		return "", nil
	}
	pwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	if !filepath.IsAbs(envFile) {
		envFile = filepath.Join(pwd, envFile)
	}
	absPath, err := filepath.Abs(filepath.Clean(envFile))
	if err != nil {
		return "", fmt.Errorf("failed to resolve env file path: %w", err)
	}
	if !isPathWithinDirectory(absPath, pwd) {
		return "", fmt.Errorf("env file path '%s' is outside the working directory", envFile)
	}
	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return absPath, nil
		}
		return "", fmt.Errorf("failed to stat env file: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("env file path '%s' is not a regular file", envFile)
	}
	if err := godotenv.Load(absPath); err != nil {
		return "", fmt.Errorf("failed to load env file %s: %w", absPath, err)
	}
	return absPath, nil
}

func isPathWithinDirectory(path, dir string) bool {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return false
	}
	absDir, err := filepath.Abs(filepath.Clean(dir))
	if err != nil {
		return false
	}
	rel, err := filepath.Rel(absDir, absPath)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
