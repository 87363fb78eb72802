package domain

// Runner entrypoint classes shipped by the framework. Their internals are
// external to this tool; it only assembles their classpath and launches them.
const (
	StoriesRunnerClass                = "org.vividus.runner.StoriesRunner"
	StepsPrinterClass                 = "org.vividus.runner.StepsPrinter"
	ScenariosCounterClass             = "org.vividus.runner.ScenariosCounter"
	StepsCounterClass                 = "org.vividus.runner.StepsCounter"
	KnownIssueValidatorClass          = "org.vividus.runner.KnownIssueValidator"
	DeprecatedStepsReplacerClass      = "org.vividus.runner.DeprecatedStepsReplacer"
	DeprecatedPropertiesReplacerClass = "org.vividus.runner.DeprecatedPropertiesReplacer"
)

// Invocation describes one runner process launch.
type Invocation struct {
	MainClass string

	// JavaExecutable overrides java discovery for this launch. When empty,
	// the runner falls back to JAVA_HOME and then PATH.
	JavaExecutable string

	// Classpath entries, JARs and resource directories, in resolution order.
	Classpath []string

	// SystemProperties become -D arguments, sorted by key for stable argv.
	SystemProperties map[string]string

	// JVMArgs are placed first on the command line, before -cp.
	JVMArgs []string

	// Args are passed to the main class verbatim.
	Args []string

	WorkingDir string
}

// ProcessResult is the observed end state of a finished runner process. A
// non-zero exit code is data for interpretation, not an error.
type ProcessResult struct {
	ExitCode int
}
