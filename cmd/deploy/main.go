// Command deploy assembles a self-contained deployment package: the compiled
// API binary, SQL migrations, a production env template, and step-by-step
// instructions, zipped into crime-map-deployment.zip.
package main

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"crimemap/internal/logger"
)

const (
	buildDirName = "build-deployment"
	zipFileName  = "crime-map-deployment.zip"
	binaryName   = "crimemap-api"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Deployment build error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	projectRoot, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve project root: %w", err)
	}

	buildDir := filepath.Join(projectRoot, buildDirName)
	zipFile := filepath.Join(projectRoot, zipFileName)

	// Clean previous build
	if _, err := os.Stat(buildDir); err == nil {
		log.Info("Cleaning previous build...")
		if err := os.RemoveAll(buildDir); err != nil {
			return fmt.Errorf("failed to clean build directory: %w", err)
		}
	}
	if err := os.Remove(zipFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove previous zip: %w", err)
	}

	if err := os.MkdirAll(buildDir, 0o755); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}

	log.Info("Creating deployment structure...")

	// The server binary must be built beforehand with
	// go build -o crimemap-api ./cmd/api
	binarySrc := filepath.Join(projectRoot, binaryName)
	if _, err := os.Stat(binarySrc); err != nil {
		return fmt.Errorf("server binary %s not found, build it first: %w", binaryName, err)
	}
	if err := copyFile(binarySrc, filepath.Join(buildDir, binaryName), 0o755); err != nil {
		return fmt.Errorf("failed to copy server binary: %w", err)
	}
	log.Infof("Copied %s", binaryName)

	// SQL migrations are applied on server startup and by the migrate command,
	// so they ship next to the binary.
	migrationsSrc := filepath.Join(projectRoot, "migrations")
	if err := copyDir(migrationsSrc, filepath.Join(buildDir, "migrations")); err != nil {
		return fmt.Errorf("failed to copy migrations: %w", err)
	}
	log.Info("Copied migrations/")

	// Copy existing .env.production if present, otherwise write a template
	log.Info("Setting up .env.production...")
	sourceEnvProd := filepath.Join(projectRoot, ".env.production")
	targetEnvProd := filepath.Join(buildDir, ".env.production")
	if _, err := os.Stat(sourceEnvProd); err == nil {
		if err := copyFile(sourceEnvProd, targetEnvProd, 0o644); err != nil {
			return fmt.Errorf("failed to copy .env.production: %w", err)
		}
		log.Info("Copied existing .env.production")
	} else {
		if err := os.WriteFile(targetEnvProd, []byte(envTemplate), 0o644); err != nil {
			return fmt.Errorf("failed to write .env.production template: %w", err)
		}
		log.Info(".env.production template created")
	}

	log.Info("Creating deployment instructions...")
	instructionsPath := filepath.Join(buildDir, "DEPLOYMENT-INSTRUCTIONS.txt")
	if err := os.WriteFile(instructionsPath, []byte(deploymentInstructions), 0o644); err != nil {
		return fmt.Errorf("failed to write deployment instructions: %w", err)
	}

	log.Info("Creating ZIP file...")
	if err := zipDirectory(buildDir, zipFile); err != nil {
		return fmt.Errorf("failed to create zip: %w", err)
	}

	info, err := os.Stat(zipFile)
	if err != nil {
		return fmt.Errorf("failed to stat zip: %w", err)
	}
	sizeInMB := float64(info.Size()) / (1024 * 1024)

	// Clean up build directory
	if err := os.RemoveAll(buildDir); err != nil {
		return fmt.Errorf("failed to clean up build directory: %w", err)
	}

	log.Infof("Deployment package ready: %s (%.2f MB)", zipFileName, sizeInMB)
	log.Info("Next steps: upload the archive, extract it, edit .env.production, and follow DEPLOYMENT-INSTRUCTIONS.txt")
	return nil
}

// copyFile copies a single file, creating parent directories as needed.
func copyFile(src, dst string, mode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// copyDir recursively copies a directory tree.
func copyDir(src, dst string) error {
	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target, info.Mode().Perm())
	})
}

// zipDirectory writes the contents of dir into a zip archive at dest,
// with paths relative to dir.
func zipDirectory(dir, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	w := zip.NewWriter(out)

	err = filepath.Walk(dir, func(path string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		f, err := w.CreateHeader(header)
		if err != nil {
			return err
		}

		in, err := os.Open(path)
		if err != nil {
			return err
		}
		defer in.Close()

		_, err = io.Copy(f, in)
		return err
	})
	if err != nil {
		w.Close()
		return err
	}

	return w.Close()
}

const envTemplate = `ENV=production
PORT=8080

DB_HOST=localhost
DB_PORT=5432
DB_USER=your_database_user
DB_PASSWORD=your_database_password
DB_NAME=your_database_name
DB_SSLMODE=require

JWT_SECRET=GENERATE_NEW_SECRET_HERE
JWT_EXPIRES_IN=24h
`

const deploymentInstructions = `# Crime Map Deployment Instructions

## Package Contents:
crimemap-api                 # Server binary (Linux amd64)
migrations/                  # SQL migrations, applied on startup
.env.production              # Environment template

## Step-by-Step Deployment:

### 1. Upload Files
- Extract crime-map-deployment.zip on the server
- Keep migrations/ next to the binary; the server loads them from ./migrations

### 2. Configure Environment
- Copy .env.production to .env
- Edit .env with the server's database credentials:
  DB_HOST=localhost
  DB_NAME=your_database_name
  DB_USER=your_database_user
  DB_PASSWORD=your_database_password
- Generate a strong JWT_SECRET (for example: openssl rand -hex 32)

### 3. Run Database Migration
Migrations run automatically on server startup. To apply them manually:
./crimemap-api migrate up    # if using the migrate binary
or simply start the server.

### 4. Start the Server
./crimemap-api
The server listens on PORT (default 8080). Put it behind a reverse proxy
(nginx/caddy) with HTTPS in production.

### 5. Troubleshooting

Error: failed to connect to database
- Verify database credentials in .env
- Ensure the database exists and accepts connections from this host
- Check DB_SSLMODE matches the server requirement

Error: migration failed
- Check that migrations/ sits next to the binary
- Inspect the schema_migrations table for a dirty version

### 6. Post-Deployment Checks
- GET /api/health returns {"status":"ok"}
- GET /api/v1/dashboard returns the statistics payload
- Login works and returns a token

## Security Notes:
- Never reuse the development JWT_SECRET
- Use HTTPS in production
- Regular backup of the database

Happy deploying!
`
