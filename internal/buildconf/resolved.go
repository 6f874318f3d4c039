package buildconf

import "strings"

// Scope names a host build tool dependency configuration.
type Scope string

const (
	// ScopeImplementation is the compile and runtime classpath.
	ScopeImplementation Scope = "implementation"

	// ScopeAnnotationProcessor is the annotation processor path.
	ScopeAnnotationProcessor Scope = "annotationProcessor"
)

// Coordinates of the dependencies the resolver adds.
const (
	GroupBitfist                   = "io.github.bitfist"
	ArtifactStarter                = "jcef-spring-boot-starter"
	GroupSpringBoot                = "org.springframework.boot"
	ArtifactAutoconfigureProcessor = "spring-boot-autoconfigure-processor"
	ArtifactStarterWeb             = "spring-boot-starter-web"
	ArtifactDependenciesBOM        = "spring-boot-dependencies"
)

// Plugin ids and tasks the host build tool must provide.
const (
	PluginJava                 = "java"
	PluginSpringBoot           = "org.springframework.boot"
	PluginDependencyManagement = "io.spring.dependency-management"
	TaskBootBuildInfo          = "bootBuildInfo"
	SourceEncoding             = "UTF-8"
)

// Annotation processor option keys. Every logical setting owns exactly one key.
const (
	FlagParameters              = "parameters"
	FlagOutputPath              = "jcef.output.path"
	FlagServiceType             = "jcef.output.service.type"
	FlagWebHost                 = "jcef.output.web.host"
	FlagWebPort                 = "jcef.output.web.port"
	FlagWebURI                  = "jcef.output.web.uri"
	FlagWebCommunicationEnabled = "jcef.web.communication.enabled"
)

// Service types passed with FlagServiceType.
const (
	ServiceTypeWeb   = "web"
	ServiceTypeQuery = "query"
)

// Launch argument keys, only set when web communication is enabled.
const (
	ArgWebCommunicationEnabled = "jcef.web.communication.enabled"
	ArgFrontendURI             = "jcef.web.frontend.uri"
)

// Dependency is one coordinate added to one scope.
type Dependency struct {
	Scope    Scope  `json:"scope" yaml:"scope"`
	Group    string `json:"group" yaml:"group"`
	Artifact string `json:"artifact" yaml:"artifact"`
	// Version is empty when the Spring Boot BOM manages it.
	Version string `json:"version,omitempty" yaml:"version,omitempty"`
}

// Notation returns group:artifact[:version].
func (d Dependency) Notation() string {
	if d.Version == "" {
		return d.Group + ":" + d.Artifact
	}
	return d.Group + ":" + d.Artifact + ":" + d.Version
}

// CompilerFlag is a key/value setting for the Java compile step.
type CompilerFlag struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value,omitempty" yaml:"value,omitempty"`
}

// Arg renders the flag as a javac argument. FlagParameters becomes
// "-parameters"; every other key becomes an annotation processor option.
func (f CompilerFlag) Arg() string {
	if f.Key == FlagParameters {
		return "-parameters"
	}
	return "-A" + f.Key + "=" + f.Value
}

// RuntimeArgument is a key/value setting for the application launch step.
type RuntimeArgument struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Arg renders the argument as a Spring Boot command line property.
func (a RuntimeArgument) Arg() string {
	return "--" + a.Key + "=" + a.Value
}

// Resolved is the build configuration derived from one set of Options.
// Each call to Resolve returns a fresh value.
type Resolved struct {
	Mode             string            `json:"mode" yaml:"mode"`
	Plugins          []string          `json:"plugins" yaml:"plugins"`
	BOMImports       []string          `json:"bomImports" yaml:"bomImports"`
	Dependencies     []Dependency      `json:"dependencies" yaml:"dependencies"`
	Encoding         string            `json:"encoding" yaml:"encoding"`
	CompilerFlags    []CompilerFlag    `json:"compilerFlags" yaml:"compilerFlags"`
	RuntimeArguments []RuntimeArgument `json:"runtimeArguments" yaml:"runtimeArguments"`
	Tasks            []string          `json:"tasks" yaml:"tasks"`
}

// Flag returns the value of the compiler flag with key.
func (r *Resolved) Flag(key string) (string, bool) {
	for _, f := range r.CompilerFlags {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// FlagMap returns the compiler flags as a map.
func (r *Resolved) FlagMap() map[string]string {
	m := make(map[string]string, len(r.CompilerFlags))
	for _, f := range r.CompilerFlags {
		m[f.Key] = f.Value
	}
	return m
}

// RuntimeArgumentMap returns the launch arguments as a map.
func (r *Resolved) RuntimeArgumentMap() map[string]string {
	m := make(map[string]string, len(r.RuntimeArguments))
	for _, a := range r.RuntimeArguments {
		m[a.Key] = a.Value
	}
	return m
}

// CompilerArgs renders every compiler flag as a javac argument, in order.
func (r *Resolved) CompilerArgs() []string {
	args := make([]string, 0, len(r.CompilerFlags))
	for _, f := range r.CompilerFlags {
		args = append(args, f.Arg())
	}
	return args
}

// RuntimeArgs renders every launch argument, in order.
func (r *Resolved) RuntimeArgs() []string {
	args := make([]string, 0, len(r.RuntimeArguments))
	for _, a := range r.RuntimeArguments {
		args = append(args, a.Arg())
	}
	return args
}

// DependenciesIn returns the dependencies added to scope, in order.
func (r *Resolved) DependenciesIn(scope Scope) []Dependency {
	var deps []Dependency
	for _, d := range r.Dependencies {
		if d.Scope == scope {
			deps = append(deps, d)
		}
	}
	return deps
}

// HasDependency reports whether group:artifact was added to scope.
func (r *Resolved) HasDependency(scope Scope, group, artifact string) bool {
	for _, d := range r.DependenciesIn(scope) {
		if d.Group == group && d.Artifact == artifact {
			return true
		}
	}
	return false
}

// String renders the compiler arguments on one line.
func (r *Resolved) String() string {
	return strings.Join(r.CompilerArgs(), " ")
}
