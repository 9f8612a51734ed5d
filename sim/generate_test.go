package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic textbook workload used throughout the engine tests.
var (
	classicRequests = []int{98, 183, 37, 122, 14, 124, 65, 67}
	classicHead     = 53
)

func TestGenerate_FCFS_ClassicWorkload(t *testing.T) {
	// GIVEN the classic workload
	run, err := Generate(FCFS, classicRequests, classicHead, Right, DefaultDiskMax)
	require.NoError(t, err)

	// THEN the head visits every request in arrival order
	wantPath := []int{53, 98, 183, 37, 122, 14, 124, 65, 67, 67}
	assert.Equal(t, wantPath, run.HeadPath())

	// AND the cumulative seek accumulates the per-visit distances
	wantCumulative := []int{0, 45, 130, 276, 361, 469, 579, 638, 640, 640}
	for i, s := range run.Steps {
		assert.Equal(t, wantCumulative[i], s.CumulativeSeek, "step %d", i)
	}
	assert.Equal(t, 640, run.TotalSeek())
}

func TestGenerate_FCFS_DuplicatesChargeSeekButServeOnce(t *testing.T) {
	// GIVEN a raw list that revisits track 50
	run, err := Generate(FCFS, []int{50, 60, 50}, 50, Right, DefaultDiskMax)
	require.NoError(t, err)

	// THEN every visit is charged (0 + 10 + 10)
	assert.Equal(t, 20, run.TotalSeek())
	// AND the served order records each distinct track once
	assert.Equal(t, []int{50, 60}, run.ServedOrder())
}

func TestGenerate_SSTF_ClassicWorkload(t *testing.T) {
	run, err := Generate(SSTF, classicRequests, classicHead, Right, DefaultDiskMax)
	require.NoError(t, err)

	// Greedy nearest-neighbor from 53
	assert.Equal(t, []int{65, 67, 37, 14, 98, 122, 124, 183}, run.ServedOrder())
	assert.Equal(t, 236, run.TotalSeek())
}

func TestGenerate_SSTF_TieBreaksToLowerTrack(t *testing.T) {
	// GIVEN two requests equidistant from the head
	run, err := Generate(SSTF, []int{40, 60}, 50, Right, DefaultDiskMax)
	require.NoError(t, err)

	// THEN the lower track wins the tie
	assert.Equal(t, []int{40, 60}, run.ServedOrder())
	assert.Equal(t, 30, run.TotalSeek())
}

func TestGenerate_SSTF_HeadOnRequest_ServedAtZeroCost(t *testing.T) {
	// GIVEN the head already sitting on a requested track
	run, err := Generate(SSTF, []int{53, 60}, 53, Right, DefaultDiskMax)
	require.NoError(t, err)

	// THEN 53 is served first with no seek charged for it
	assert.Equal(t, []int{53, 60}, run.ServedOrder())
	assert.Equal(t, 53, run.Steps[1].Head)
	assert.Equal(t, 0, run.Steps[1].CumulativeSeek)
	assert.Equal(t, 7, run.TotalSeek())
}

func TestGenerate_StartsAtHeadAndEndsWithSentinel(t *testing.T) {
	for _, alg := range Algorithms() {
		run, err := Generate(alg, classicRequests, classicHead, Left, DefaultDiskMax)
		require.NoError(t, err, "algorithm %s", alg)

		// First frame: synthetic zero-cost step at the start head
		first := run.Steps[0]
		assert.Equal(t, classicHead, first.Head, "algorithm %s", alg)
		assert.Equal(t, 0, first.CumulativeSeek, "algorithm %s", alg)
		assert.Empty(t, first.ServedOrder, "algorithm %s", alg)

		// Last frame: sentinel duplicating the final real step
		n := len(run.Steps)
		require.GreaterOrEqual(t, n, 3, "algorithm %s", alg)
		assert.Equal(t, run.Steps[n-2].Head, run.Steps[n-1].Head, "algorithm %s", alg)
		assert.Equal(t, run.Steps[n-2].CumulativeSeek, run.Steps[n-1].CumulativeSeek, "algorithm %s", alg)
		assert.Equal(t, run.Steps[n-2].ServedOrder, run.Steps[n-1].ServedOrder, "algorithm %s", alg)
	}
}

func TestGenerate_RunInvariants(t *testing.T) {
	inputs := []struct {
		requests []int
		head     int
	}{
		{classicRequests, classicHead},
		{[]int{0, 199}, 100},
		{[]int{53}, 53},
		{[]int{10, 10, 10}, 90},
		{[]int{150, 160, 170}, 20},
	}

	for _, alg := range Algorithms() {
		for _, dir := range []Direction{Left, Right} {
			for _, in := range inputs {
				run, err := Generate(alg, in.requests, in.head, dir, DefaultDiskMax)
				require.NoError(t, err, "%s/%s %v", alg, dir, in.requests)

				distinct := Normalize(in.requests, SSTF)
				seen := map[int]bool{}
				for i, s := range run.Steps {
					// Head stays on the disk
					assert.GreaterOrEqual(t, s.Head, 0)
					assert.LessOrEqual(t, s.Head, DefaultDiskMax)

					if i > 0 {
						prev := run.Steps[i-1]
						// Cumulative seek never decreases
						assert.GreaterOrEqual(t, s.CumulativeSeek, prev.CumulativeSeek)
						// Served state never shrinks
						assert.GreaterOrEqual(t, len(s.ServedOrder), len(prev.ServedOrder))
						for track := range prev.Served {
							assert.True(t, s.Served[track])
						}
					}

					// Served order holds no duplicates and only asked-for tracks
					assert.LessOrEqual(t, len(s.ServedOrder), distinct.Size())
				}
				for _, track := range run.ServedOrder() {
					assert.False(t, seen[track], "%s/%s served %d twice", alg, dir, track)
					seen[track] = true
					assert.True(t, distinct.Contains(track))
				}
				// Every distinct request is eventually served
				assert.Equal(t, distinct.Size(), len(run.ServedOrder()), "%s/%s %v", alg, dir, in.requests)
			}
		}
	}
}

func TestGenerate_RejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name     string
		alg      Algorithm
		requests []int
		head     int
		dir      Direction
		diskMax  int
	}{
		{"empty requests", SCAN, nil, 50, Right, DefaultDiskMax},
		{"request out of range", SCAN, []int{200}, 50, Right, DefaultDiskMax},
		{"negative request", FCFS, []int{-1}, 50, Right, DefaultDiskMax},
		{"head out of range", LOOK, []int{10}, 200, Right, DefaultDiskMax},
		{"unknown algorithm", Algorithm("elevator"), []int{10}, 50, Right, DefaultDiskMax},
		{"unknown direction", CSCAN, []int{10}, 50, Direction("up"), DefaultDiskMax},
		{"non-positive disk", FCFS, []int{0}, 0, Right, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Generate(tc.alg, tc.requests, tc.head, tc.dir, tc.diskMax)
			assert.Error(t, err)
		})
	}
}

func TestGenerate_DirectionIgnoredByFCFSAndSSTF(t *testing.T) {
	// FCFS and SSTF accept any direction token since they never consult it
	for _, alg := range []Algorithm{FCFS, SSTF} {
		left, err := Generate(alg, classicRequests, classicHead, Left, DefaultDiskMax)
		require.NoError(t, err)
		right, err := Generate(alg, classicRequests, classicHead, Right, DefaultDiskMax)
		require.NoError(t, err)
		assert.Equal(t, left.TotalSeek(), right.TotalSeek(), "algorithm %s", alg)
		assert.Equal(t, left.ServedOrder(), right.ServedOrder(), "algorithm %s", alg)
	}
}
