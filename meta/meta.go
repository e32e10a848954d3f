// meta/meta.go
package meta

// DEPTH defines the number of plies searched below each root move.
const DEPTH = 9

// MAX_TURNS caps the number of moves in a local game.
const MAX_TURNS = 300

// NUM_GAMES defines the number of games per experiment match-up.
const NUM_GAMES = 10

// LOG_LEVEL is the default zerolog level name.
const LOG_LEVEL = "info"
