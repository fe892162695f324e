package models

import "github.com/rfielding/devs-sim/model"

// recorder is embedded by every atomic model to provide the shared
// append-only activity log gated by a store-records flag, grounded on the
// original source's per-model `records: Vec<ModelRecord>` plus
// `store_records` switch (processor.rs, present in every sibling model
// file).
type recorder struct {
	storeRecords bool
	records      []model.ModelRecord
}

func newRecorder(storeRecords bool) recorder {
	return recorder{storeRecords: storeRecords}
}

func (r *recorder) record(time float64, action, subject string) {
	if !r.storeRecords {
		return
	}
	r.records = append(r.records, model.ModelRecord{Time: time, Action: action, Subject: subject})
}

// Records returns the accumulated log. Callers must not mutate it.
func (r *recorder) Records() []model.ModelRecord { return r.records }
