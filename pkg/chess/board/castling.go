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

package board

// CastlingRights is pure FEN round-trip bookkeeping: the evaluator
// never reads it, since static evaluation has no notion of legality.
// It exists only so a Board built from a FEN string serializes back
// to the same FEN string.
type CastlingRights byte

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling CastlingRights = 0
)

// NewCastlingRights parses a FEN castling field ("KQkq", "Kq", "-", ...).
func NewCastlingRights(r string) CastlingRights {
	var rights CastlingRights
	for _, c := range r {
		switch c {
		case 'K':
			rights |= WhiteKingside
		case 'Q':
			rights |= WhiteQueenside
		case 'k':
			rights |= BlackKingside
		case 'q':
			rights |= BlackQueenside
		}
	}
	return rights
}

// Mirror swaps White's rights with Black's, for building a color-mirrored
// twin position (§8 testable property 1).
func (c CastlingRights) Mirror() CastlingRights {
	var m CastlingRights
	if c&WhiteKingside != 0 {
		m |= BlackKingside
	}
	if c&WhiteQueenside != 0 {
		m |= BlackQueenside
	}
	if c&BlackKingside != 0 {
		m |= WhiteKingside
	}
	if c&BlackQueenside != 0 {
		m |= WhiteQueenside
	}
	return m
}

func (c CastlingRights) String() string {
	var str string
	if c&WhiteKingside != 0 {
		str += "K"
	}
	if c&WhiteQueenside != 0 {
		str += "Q"
	}
	if c&BlackKingside != 0 {
		str += "k"
	}
	if c&BlackQueenside != 0 {
		str += "q"
	}
	if str == "" {
		str = "-"
	}
	return str
}
