package utils

// PartitionMap splits NumCells contiguous cells into ParallelDegree buckets.
// Bucket sizes differ by at most one cell, the larger buckets come first.
type PartitionMap struct {
	NumCells       int
	ParallelDegree int
	Partitions     [][2]int // Beginning and end cell of each bucket
}

func NewPartitionMap(ParallelDegree, numCells int) (pm *PartitionMap) {
	if ParallelDegree < 1 {
		panic("parallel degree must be positive")
	}
	pm = &PartitionMap{
		NumCells:       numCells,
		ParallelDegree: ParallelDegree,
		Partitions:     make([][2]int, ParallelDegree),
	}
	for n := 0; n < ParallelDegree; n++ {
		pm.Partitions[n] = pm.Split1D(n)
	}
	return
}

// GetBucket finds the bucket holding cell k, returning -1 when k is out of range
func (pm *PartitionMap) GetBucket(k int) (bucketNum, min, max int) {
	_, bucketNum, min, max = pm.getBucketWithTryCount(k)
	return
}

func (pm *PartitionMap) getBucketWithTryCount(k int) (tryCount, bucketNum, min, max int) {
	if k < 0 || k >= pm.NumCells {
		return 0, -1, 0, 0
	}
	// Initial guess assumes equal sized buckets
	bucketNum = int(float64(pm.ParallelDegree*k) / float64(pm.NumCells))
	for !(pm.Partitions[bucketNum][0] <= k && pm.Partitions[bucketNum][1] > k) {
		if pm.Partitions[bucketNum][0] > k {
			bucketNum--
		} else {
			bucketNum++
		}
		if bucketNum == -1 || bucketNum == pm.ParallelDegree {
			return 0, -1, 0, 0
		}
		tryCount++
	}
	min, max = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketRange(bucketNum int) (kMin, kMax int) {
	kMin, kMax = pm.Partitions[bucketNum][0], pm.Partitions[bucketNum][1]
	return
}

func (pm *PartitionMap) GetBucketDimension(bn int) (kMax int) {
	if bn == -1 {
		kMax = pm.NumCells
		return
	}
	var (
		k1, k2 = pm.GetBucketRange(bn)
	)
	kMax = k2 - k1
	return
}

// Split1D returns the cell range of one bucket, with a maximum imbalance of one cell
func (pm *PartitionMap) Split1D(threadNum int) (bucket [2]int) {
	var (
		Npart            = pm.NumCells / pm.ParallelDegree
		startAdd, endAdd int
		remainder        = pm.NumCells % pm.ParallelDegree
	)
	if remainder != 0 { // spread the remainder over the first buckets
		if threadNum+1 > remainder {
			startAdd = remainder
		} else {
			startAdd = threadNum
			endAdd = 1
		}
	}
	bucket[0] = threadNum*Npart + startAdd
	bucket[1] = bucket[0] + Npart + endAdd
	return
}
