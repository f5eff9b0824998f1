// Copyright (c) 2017 Intel Corporation
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

package experiment

import (
	"time"

	"github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// Session identifies single run of an experiment binary.
type Session struct {
	ID      string
	Started time.Time
}

// NewSession returns session with fresh random (v4) identifier.
func NewSession() (Session, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return Session{}, errors.Wrap(err, "cannot generate experiment ID")
	}
	return Session{
		ID:      id.String(),
		Started: time.Now(),
	}, nil
}

// Name is human readable and sortable name of the session.
func (s Session) Name() string {
	return s.Started.Format("2006-01-02T15h04m05s_") + s.ID
}
