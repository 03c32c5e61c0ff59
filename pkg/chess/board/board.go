// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package board implements the board representation the evaluator
// consumes as an external collaborator (§3): occupancy bitboards per
// side and per piece kind, an incrementally maintained psqtmat running
// total, and pkhash, a hash of pawn-and-king placement only. It does
// not implement move generation or legality; FillSquare/ClearSquare
// are the only mutators, mirroring how a real move-making layer would
// maintain this bookkeeping incrementally.
package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/chess/zobrist"
	"github.com/corvidlab/corvid/pkg/eval/psqt"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// Board is a legal chess position, as handed to the evaluator by its
// external collaborators (move generation, search).
type Board struct {
	// Colours[c] is the occupancy bitboard of every piece of color c.
	Colours [piece.ColorN]bitboard.Board
	// Pieces[t] is the occupancy bitboard of every piece of kind t,
	// regardless of color. Index 0 (piece.NoType) is always empty.
	Pieces [piece.TypeN]bitboard.Board

	// position is the mailbox view, used for FillSquare/ClearSquare and
	// serialization; it is kept in lockstep with Colours/Pieces.
	position [square.N]piece.Piece

	// Side is the side to move.
	Side piece.Color

	Kings [piece.ColorN]square.Square

	EnPassant square.Square
	Castling  CastlingRights
	DrawClock int
	FullMoves int

	// Psqtmat is the running sum of PSQT+material over every piece on
	// the board (§3): invariant to equal what the evaluator would
	// compute from scratch by summing PSQT[piece][square] directly.
	Psqtmat score.Score

	// Pkhash is a 64-bit hash of pawn-and-king placement only, the key
	// the pawn-king cache (§4.9) is looked up by.
	Pkhash zobrist.Key
}

// StartFEN is the FEN string of the initial chess position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// New parses a FEN string into a Board.
func New(fen string) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		return nil, fmt.Errorf("board: fen %q: want 6 fields, got %d", fen, len(fields))
	}

	b := &Board{EnPassant: square.None}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("board: fen %q: want 8 ranks, got %d", fen, len(ranks))
	}
	for rankID, rankData := range ranks {
		fileID := square.FileA
		for _, id := range rankData {
			if id >= '1' && id <= '8' {
				fileID += square.File(id - '0')
				continue
			}
			if fileID > square.FileH {
				return nil, fmt.Errorf("board: fen %q: rank %d overflows the board", fen, rankID)
			}
			s := square.New(fileID, square.Rank(rankID))
			b.FillSquare(s, piece.NewFromString(string(id)))
			fileID++
		}
	}

	switch fields[1] {
	case "w":
		b.Side = piece.White
	case "b":
		b.Side = piece.Black
	default:
		return nil, fmt.Errorf("board: fen %q: bad side to move %q", fen, fields[1])
	}

	b.Castling = NewCastlingRights(fields[2])
	b.EnPassant = square.NewFromString(fields[3])

	drawClock, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("board: fen %q: bad halfmove clock: %w", fen, err)
	}
	b.DrawClock = drawClock

	fullMoves, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("board: fen %q: bad fullmove number: %w", fen, err)
	}
	b.FullMoves = fullMoves

	return b, nil
}

// FEN serializes the Board back into a FEN string.
func (b *Board) FEN() string {
	var sb strings.Builder
	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		empty := 0
		for file := square.FileA; file <= square.FileH; file++ {
			p := b.position[square.New(file, rank)]
			if p == piece.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank != square.Rank1 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(b.Side.String())
	sb.WriteByte(' ')
	sb.WriteString(b.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(b.EnPassant.String())
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.DrawClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.FullMoves))
	return sb.String()
}

func (b *Board) String() string {
	return fmt.Sprintf("%s\nfen: %s\n", renderMailbox(&b.position), b.FEN())
}

func renderMailbox(pos *[square.N]piece.Piece) string {
	var sb strings.Builder
	sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	for rank := square.Rank8; rank <= square.Rank1; rank++ {
		sb.WriteString("| ")
		for file := square.FileA; file <= square.FileH; file++ {
			sb.WriteString(pos[square.New(file, rank)].String())
			sb.WriteString(" | ")
		}
		sb.WriteString(rank.String())
		sb.WriteByte('\n')
		sb.WriteString("+---+---+---+---+---+---+---+---+\n")
	}
	sb.WriteString("  a   b   c   d   e   f   g   h\n")
	return sb.String()
}

// Occupied returns the occupancy of every piece on the board.
func (b *Board) Occupied() bitboard.Board {
	return b.Colours[piece.White] | b.Colours[piece.Black]
}

// FillSquare places p on s, incrementally maintaining Psqtmat and
// Pkhash. s must currently be empty.
func (b *Board) FillSquare(s square.Square, p piece.Piece) {
	c := p.Color()
	t := p.Type()

	b.Colours[c].Set(s)
	b.Pieces[t].Set(s)
	b.position[s] = p

	if t == piece.King {
		b.Kings[c] = s
	}

	b.Psqtmat += psqt.Table[p][s]
	if zobrist.IsPawnOrKing(p) {
		b.Pkhash ^= zobrist.PieceSquare[p][s]
	}
}

// ClearSquare removes whatever piece sits on s, incrementally
// maintaining Psqtmat and Pkhash. s must currently be occupied.
func (b *Board) ClearSquare(s square.Square) {
	p := b.position[s]
	c := p.Color()
	t := p.Type()

	b.Colours[c].Unset(s)
	b.Pieces[t].Unset(s)
	b.position[s] = piece.NoPiece

	b.Psqtmat -= psqt.Table[p][s]
	if zobrist.IsPawnOrKing(p) {
		b.Pkhash ^= zobrist.PieceSquare[p][s]
	}
}

// MovePiece relocates the piece on from to to, an empty square,
// maintaining Psqtmat/Pkhash exactly as a ClearSquare+FillSquare pair
// would; it exists so callers testing the psqtmat invariant across a
// move sequence don't have to read the piece off twice.
func (b *Board) MovePiece(from, to square.Square) {
	p := b.position[from]
	b.ClearSquare(from)
	b.FillSquare(to, p)
}

// PieceAt returns the piece occupying s, or piece.NoPiece.
func (b *Board) PieceAt(s square.Square) piece.Piece {
	return b.position[s]
}

// Pawns returns the occupancy of c's pawns.
func (b *Board) Pawns(c piece.Color) bitboard.Board {
	return b.Pieces[piece.Pawn] & b.Colours[c]
}

// Knights returns the occupancy of c's knights.
func (b *Board) Knights(c piece.Color) bitboard.Board {
	return b.Pieces[piece.Knight] & b.Colours[c]
}

// Bishops returns the occupancy of c's bishops.
func (b *Board) Bishops(c piece.Color) bitboard.Board {
	return b.Pieces[piece.Bishop] & b.Colours[c]
}

// Rooks returns the occupancy of c's rooks.
func (b *Board) Rooks(c piece.Color) bitboard.Board {
	return b.Pieces[piece.Rook] & b.Colours[c]
}

// Queens returns the occupancy of c's queens.
func (b *Board) Queens(c piece.Color) bitboard.Board {
	return b.Pieces[piece.Queen] & b.Colours[c]
}

// King returns the square of c's king.
func (b *Board) King(c piece.Color) square.Square {
	return b.Kings[c]
}
