package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a
	// lobby-capable table.
	RpcQuickMatch = "quick_match"

	// RpcTableToken is the RPC id for minting spectate/rejoin table tokens.
	RpcTableToken = "table_token"

	// MatchNameFiftySix is the authoritative match handler name registered
	// with Nakama.
	MatchNameFiftySix = "fiftysix_match"

	// MatchLabelKey_OpenSeats is the label key quick-match queries filter on.
	MatchLabelKey_OpenSeats = "open"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartRound int64 = 1
	OpPlaceBid   int64 = 2
	OpPlayCard   int64 = 3

	// Server -> Client events
	OpMatchSnapshot  int64 = 101
	OpHandDealt      int64 = 102 // sent privately
	OpBiddingStarted int64 = 103
	OpBidPlaced      int64 = 104
	OpBiddingEnded   int64 = 105
	OpCardPlayed     int64 = 106
	OpTrickWon       int64 = 107
	OpRoundEnded     int64 = 108
	OpGameError      int64 = 120
)
