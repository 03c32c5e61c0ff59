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

package square

// Diagonal represents a NE-SW diagonal of the chessboard, numbered 0..14
// starting from the H1 corner diagonal.
type Diagonal int8

// DiagonalN is the number of diagonals.
const DiagonalN = 15

// AntiDiagonal represents a NW-SE diagonal of the chessboard, numbered
// 0..14 starting from the A1 corner diagonal.
type AntiDiagonal int8

// AntiDiagonalN is the number of anti-diagonals.
const AntiDiagonalN = 15

// Diagonal returns the NE-SW diagonal of the given square.
func (s Square) Diagonal() Diagonal {
	return 14 - Diagonal(s.Rank()) - Diagonal(s.File())
}

// AntiDiagonal returns the NW-SE anti-diagonal of the given square.
func (s Square) AntiDiagonal() AntiDiagonal {
	return 7 - AntiDiagonal(s.Rank()) + AntiDiagonal(s.File())
}
