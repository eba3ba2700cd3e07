// meta/meta.go
package meta

// GAME_COUNT defines the number of independent trials.
const GAME_COUNT = 10000

// FLIP_COUNT defines the number of coin flips per trial.
const FLIP_COUNT = 10000

// EXIT_INTERRUPTED is the exit code after SIGINT or SIGTERM.
const EXIT_INTERRUPTED = 130
