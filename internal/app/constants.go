package app

// PlayersPerTable is fixed: 56 is a four-player partnership game and the
// 48-card deck only deals evenly at exactly four seats per table.
const PlayersPerTable = 4
