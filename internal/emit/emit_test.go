package emit

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bitfist/jcefbuild/internal/buildconf"
	"github.com/bitfist/jcefbuild/internal/output"
	"github.com/bitfist/jcefbuild/internal/repository"
	"github.com/bitfist/jcefbuild/internal/versions"
)

func testDocument(t *testing.T, opts buildconf.Options, repos ...string) *Document {
	t.Helper()
	table := &versions.Table{SpringBoot: "3.5.3", Jcef: "0.4.2"}
	build, err := buildconf.Resolve(opts, table)
	require.NoError(t, err)

	listed, err := repository.List(repos)
	require.NoError(t, err)
	return NewDocument("demo", table, build, listed)
}

func productionDocument(t *testing.T) *Document {
	return testDocument(t, buildconf.Options{OutputPath: "/work/app/ts"})
}

func developmentDocument(t *testing.T) *Document {
	return testDocument(t, buildconf.Options{
		OutputPath: "/work/app/ts",
		Mode:       buildconf.ModeDevelopment,
		WebCommunication: buildconf.WebCommunication{
			Enabled:     true,
			FrontendURI: "http://localhost:5173",
		},
	}, "bitfist/jcef-spring-boot-starter")
}

func render(t *testing.T, format output.OutputFormat, doc *Document) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, format, doc))
	return buf.String()
}

func TestWrite_Args(t *testing.T) {
	got := render(t, output.FormatArgs, productionDocument(t))
	assert.Equal(t,
		"-Ajcef.output.service.type=query\n-parameters\n-Ajcef.output.path=/work/app/ts\n",
		got)
}

func TestWrite_YAML(t *testing.T) {
	got := render(t, output.FormatYAML, developmentDocument(t))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, "demo", decoded["project"])
	assert.Contains(t, got, "springBoot: 3.5.3")
	assert.Contains(t, got, "key: jcef.web.communication.enabled")
	assert.Contains(t, got, "url: https://maven.pkg.github.com/bitfist/jcef-spring-boot-starter")
	assert.NotContains(t, got, "ghp_secret")
	assert.NotContains(t, got, "octocat", "credentials are not part of the document")
}

func TestWrite_JSON(t *testing.T) {
	got := render(t, output.FormatJSON, productionDocument(t))

	var decoded struct {
		Project string `json:"project"`
		Build   struct {
			Mode          string                   `json:"mode"`
			CompilerFlags []buildconf.CompilerFlag `json:"compilerFlags"`
		} `json:"build"`
	}
	require.NoError(t, json.Unmarshal([]byte(got), &decoded))
	assert.Equal(t, "demo", decoded.Project)
	assert.Equal(t, "production", decoded.Build.Mode)
	assert.Len(t, decoded.Build.CompilerFlags, 3)
	assert.True(t, strings.HasSuffix(got, "}\n"))
}

func TestWrite_Table(t *testing.T) {
	got := render(t, output.FormatTable, developmentDocument(t))

	for _, want := range []string{
		"COMPILER ARGUMENT",
		"-Ajcef.output.service.type=web",
		"RUNTIME ARGUMENT",
		"--jcef.web.frontend.uri=http://localhost:5173",
		"org.springframework.boot:spring-boot-starter-web (bom)",
		"bitfist/jcef-spring-boot-starter",
	} {
		assert.Contains(t, got, want)
	}

	prod := render(t, output.FormatTable, productionDocument(t))
	assert.NotContains(t, prod, "RUNTIME ARGUMENT")
	assert.NotContains(t, prod, "REPOSITORY")
}

func TestWrite_Gradle(t *testing.T) {
	got := render(t, output.FormatGradle, developmentDocument(t))

	for _, want := range []string{
		`apply(plugin = "org.springframework.boot")`,
		`mavenBom("org.springframework.boot:spring-boot-dependencies:3.5.3")`,
		`name = "bitfistJcefSpringBootStarter"`,
		`url = uri("https://maven.pkg.github.com/bitfist/jcef-spring-boot-starter")`,
		`"implementation"("io.github.bitfist:jcef-spring-boot-starter:0.4.2")`,
		`"implementation"("org.springframework.boot:spring-boot-starter-web")`,
		`"annotationProcessor"("org.springframework.boot:spring-boot-autoconfigure-processor:3.5.3")`,
		`options.encoding = "UTF-8"`,
		`"-Ajcef.output.web.port=8080",`,
		`"-parameters",`,
		`buildInfo()`,
		`"--jcef.web.communication.enabled=true",`,
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "ghp_secret")

	prod := render(t, output.FormatGradle, productionDocument(t))
	assert.NotContains(t, prod, "bootRun")
	assert.NotContains(t, prod, "maven {")
}

func TestWrite_Deterministic(t *testing.T) {
	for _, format := range []output.OutputFormat{
		output.FormatYAML, output.FormatJSON, output.FormatTable, output.FormatArgs, output.FormatGradle,
	} {
		t.Run(format.String(), func(t *testing.T) {
			first := render(t, format, developmentDocument(t))
			second := render(t, format, developmentDocument(t))
			assert.Equal(t, first, second)
		})
	}
}

func TestWrite_Errors(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, output.FormatYAML, nil))
	assert.Error(t, Write(&buf, output.OutputFormat("xml"), productionDocument(t)))
}

func TestKotlinString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: `"plain"`},
		{in: `C:\out`, want: `"C:\\out"`},
		{in: `say "hi"`, want: `"say \"hi\""`},
		{in: "${HOME}", want: `"\${HOME}"`},
		{in: "a\nb", want: `"a\nb"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kotlinString(tt.in))
	}
}

func TestRepositoryName(t *testing.T) {
	assert.Equal(t, "bitfistJcefSpringBootStarter", repositoryName("bitfist/jcef-spring-boot-starter"))
	assert.Equal(t, "acmeLib2", repositoryName("Acme/lib.2"))
}
