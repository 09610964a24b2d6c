// Copyright 2021 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package nulls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNulls(t *testing.T) {
	var empty *Nulls
	require.False(t, Any(empty))
	require.Equal(t, 0, Length(empty))
	require.False(t, Contains(empty, 1))
	require.Equal(t, "[]", String(empty))

	nsp := Build(1, 3, 5)
	require.True(t, Any(nsp))
	require.Equal(t, 3, Length(nsp))
	require.True(t, Contains(nsp, 3))
	require.False(t, Contains(nsp, 2))
	require.Equal(t, "[1 3 5]", String(nsp))

	Del(nsp, 3)
	require.False(t, Contains(nsp, 3))

	AddRange(nsp, 10, 13)
	require.Equal(t, 5, Length(nsp))

	cp := nsp.Clone()
	Reset(nsp)
	require.False(t, Any(nsp))
	require.Equal(t, 5, Length(cp))
}

func TestOr(t *testing.T) {
	r := &Nulls{}
	Or(nil, &Nulls{}, r)
	require.Nil(t, r.Np)

	Or(Build(1), Build(2, 3), r)
	require.Equal(t, 3, Length(r))
}
