package schema

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvdnvd00/agent-kits/internal/config"
)

func writeFile(t *testing.T, dir, rel, content string) {
	t.Helper()
	path := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const goodPrisma = `datasource db {
  provider = "postgresql"
  url      = env("DATABASE_URL")
}

generator client {
  provider = "prisma-client-js"
}

model User {
  id        String   @id @default(cuid())
  email     String   @unique
  createdAt DateTime @default(now())
  updatedAt DateTime @updatedAt
}

enum Role {
  ADMIN
  MEMBER
}
`

func TestCheck_NoSchemas(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/index.ts", "export {}\n")

	rep := Check(dir, config.DefaultConfig())
	assert.True(t, rep.Passed)
	assert.Zero(t, rep.SchemasChecked)
	assert.Equal(t, "No schema files found", rep.Message)
	assert.Equal(t, "schema_validator", rep.Script)
}

func TestCheck_CleanPrismaSchema(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prisma/schema.prisma", goodPrisma)

	rep := Check(dir, config.DefaultConfig())
	require.Equal(t, 1, rep.SchemasChecked)
	assert.True(t, rep.Passed)

	res := rep.Results[0]
	assert.Equal(t, "prisma", res.Type)
	assert.Equal(t, "schema.prisma", res.File)
	assert.Contains(t, res.Passed, "Found 1 models")
	assert.Contains(t, res.Passed, "Found 1 enums")
	assert.Contains(t, res.Passed, "Datasource configured")
	assert.Contains(t, res.Passed, "Generator configured")
	assert.Empty(t, res.Issues)
}

func TestValidatePrisma_FlagsConventionViolations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "prisma/schema.prisma", `model post {
  title  String
  userId String
}
`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	issues := rep.Results[0].Issues
	assert.Contains(t, issues, "Model 'post' should be PascalCase")
	assert.Contains(t, issues, "Model 'post' missing @id field")
	assert.Contains(t, issues, "Model 'post' missing createdAt (recommended)")
	assert.Contains(t, issues, "Model 'post' missing updatedAt (recommended)")
	assert.Contains(t, issues, "Consider @@index([userId]) in post")
	assert.Contains(t, issues, "Missing datasource configuration")
}

func TestValidateDrizzle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/db/schema.ts", `import { pgTable, serial, timestamp } from "drizzle-orm/pg-core"

export const users = pgTable("users", {
  id: serial("id").primaryKey(),
  createdAt: timestamp("created_at"),
})
`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	res := rep.Results[0]
	assert.Equal(t, "drizzle", res.Type)
	assert.Contains(t, res.Passed, "Found 1 tables")
	assert.Contains(t, res.Passed, "Primary keys defined")
	assert.Contains(t, res.Passed, "Timestamp fields found")
}

func TestValidateTypeORM(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "src/entities/User.ts", `@Entity()
export class User {
  @PrimaryGeneratedColumn()
  id: number
}
`)

	rep := Check(dir, config.DefaultConfig())
	require.Len(t, rep.Results, 1)
	res := rep.Results[0]
	assert.Equal(t, "typeorm", res.Type)
	assert.Contains(t, res.Passed, "@Entity decorator found")
	assert.Contains(t, res.Passed, "Primary key defined")
	assert.Contains(t, res.Issues, "Consider adding @CreateDateColumn")
}

func TestCheck_PassedIsAdvisory(t *testing.T) {
	dir := t.TempDir()
	// Ten bare entities generate well over the issue threshold.
	for i := 0; i < 10; i++ {
		writeFile(t, dir, filepath.Join("src/entities", string(rune('A'+i))+".ts"),
			"export class Thing {}\n")
	}

	rep := Check(dir, config.DefaultConfig())
	assert.False(t, rep.Passed)
	assert.Equal(t, 30, rep.TotalIssues)
}

func TestCheck_SchemaFileLimit(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Scan.MaxSchemaFiles = 2
	for _, name := range []string{"A", "B", "C", "D"} {
		writeFile(t, dir, filepath.Join("src/entities", name+".ts"), "@Entity()\n")
	}

	rep := Check(dir, cfg)
	assert.Equal(t, 2, rep.SchemasChecked)
}

func TestCheck_IgnoresNodeModules(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "node_modules/pkg/prisma/schema.prisma", goodPrisma)

	rep := Check(dir, config.DefaultConfig())
	assert.Zero(t, rep.SchemasChecked)
}
