// Command launchguard is the trusted launcher for the protected
// application. Run without a subcommand it verifies the application and
// helper executables against the compiled-in trust anchors and starts the
// application with all arguments forwarded; subcommands expose the
// verification machinery for diagnostics and packaging.
package main
