// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
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

package eval

import (
	"github.com/corvidlab/corvid/pkg/chess/bitboard"
	"github.com/corvidlab/corvid/pkg/chess/piece"
	"github.com/corvidlab/corvid/pkg/chess/square"
	"github.com/corvidlab/corvid/pkg/eval/score"
)

// evaluatePawns scores us's pawn structure (§4.4): isolated, stacked,
// backward and connected pawns, plus candidate passers. Every pawn
// that clears PassedPawnMask is recorded into info.passedPawns for C7
// to price later; the result belongs to the pawn-king subtotal (§4.9)
// so callers must fold it into info.pkeval, not the general score.
func evaluatePawns(info *EvalInfo, us piece.Color) score.Score {
	them := us.Other()
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)

	var eval score.Score

	for bb := ownPawns; bb != bitboard.Empty; {
		s := bb.Pop()
		file := s.File()
		relRank := s.Rank().RelativeTo(us == piece.White)

		if ownPawns&bitboard.AdjacentFiles[file] == bitboard.Empty {
			eval += PawnIsolated
			info.trace.add(termPawnIsolated, us, 1)
		} else if isBackward(info, us, s) {
			openFile := boolIndex(enemyPawns&bitboard.Files[file] == bitboard.Empty)
			eval += PawnBackwards[openFile]
			info.trace.add(termPawnBackwards, us, 1)
		}

		if bb&bitboard.Files[file] != bitboard.Empty {
			eval += PawnStacked
			info.trace.add(termPawnStacked, us, 1)
		}

		if ownPawns&bitboard.PawnConnectedMask[us][s] != bitboard.Empty {
			idx := 4*int(relRank) + file.EdgeDistance()
			eval += PawnConnected32[idx]
			info.trace.add(termPawnConnected, us, 1)
		}

		if enemyPawns&bitboard.PassedPawnMask[us][s] == bitboard.Empty {
			info.passedPawns.Set(s)
		} else if candidate, dominates := isCandidatePasser(info, us, s); candidate {
			eval += PawnCandidatePasser[boolIndex(dominates)][relRank]
			info.trace.add(termPawnCandidatePasser, us, 1)
		}
	}

	return eval
}

// isBackward reports whether the pawn on s has fallen behind its
// neighbors on adjacent files and cannot be supported by a future own
// pawn advance: no own pawn defends it from behind, and its own stop
// square is covered by an enemy pawn.
func isBackward(info *EvalInfo, us piece.Color, s square.Square) bool {
	them := us.Other()
	stop := s.File()
	behindMask := bitboard.AdjacentFiles[stop] & bitboard.ForwardRanks[them][s.Rank()]
	if info.board.Pawns(us)&behindMask != bitboard.Empty {
		return false
	}
	stopSquareBB := bitboard.Squares[s].Up(us)
	return stopSquareBB&info.pawnAttacks[them] != bitboard.Empty
}

// isCandidatePasser reports whether s is blocked from being a passed
// pawn only by a direct opponent on its own file (no interference from
// adjacent files), and whether us's pawns outnumber them's defenders
// of that blocker, i.e. support for the eventual capture dominates.
func isCandidatePasser(info *EvalInfo, us piece.Color, s square.Square) (candidate, dominates bool) {
	them := us.Other()
	file := s.File()
	ownPawns := info.board.Pawns(us)
	enemyPawns := info.board.Pawns(them)

	aheadAdjacent := bitboard.AdjacentFiles[file] & bitboard.ForwardRanks[us][s.Rank()] & enemyPawns
	aheadOwnFile := bitboard.Files[file] & bitboard.ForwardRanks[us][s.Rank()] & enemyPawns
	if aheadAdjacent != bitboard.Empty || aheadOwnFile == bitboard.Empty {
		return false, false
	}

	supporters := (ownPawns & bitboard.PawnConnectedMask[us][s]).Count()
	defenders := (enemyPawns & bitboard.AdjacentFiles[file] & bitboard.Ranks[(aheadOwnFile.FirstOne()).Rank()]).Count()
	return true, supporters >= defenders
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
