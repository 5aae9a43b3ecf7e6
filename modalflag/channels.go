// This file is part of spipwm.
//
// spipwm is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// spipwm is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with spipwm.  If not, see <https://www.gnu.org/licenses/>.


package modalflag

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/spipwm/curated"
	"github.com/jetsetilly/spipwm/hardware/pins"
)

// InvalidChannels is the error pattern returned when a channel list can not
// be parsed.
const InvalidChannels = "modalflag: invalid channel list (%s)"

// channelList implements the flag.Value interface. Channels are listed with
// commas and ranges can be specified with a dash. For example:
//
//	0,3,8-11
type channelList struct {
	channels *[]int
}

func (cl channelList) String() string {
	if cl.channels == nil {
		return ""
	}
	s := make([]string, 0, len(*cl.channels))
	for _, c := range *cl.channels {
		s = append(s, strconv.Itoa(c))
	}
	return strings.Join(s, ",")
}

// ParseChannels converts a channel list to a slice of channel numbers. The
// order of the list is preserved.
func ParseChannels(s string) ([]int, error) {
	var channels []int

	parse := func(v string) (int, error) {
		c, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || c < 0 || c >= pins.NumChannels {
			return 0, fmt.Errorf("%s", v)
		}
		return c, nil
	}

	for _, f := range strings.Split(s, ",") {
		if strings.TrimSpace(f) == "" {
			continue
		}

		r := strings.SplitN(f, "-", 2)
		from, err := parse(r[0])
		if err != nil {
			return nil, curated.Errorf(InvalidChannels, err)
		}
		to := from
		if len(r) == 2 {
			to, err = parse(r[1])
			if err != nil {
				return nil, curated.Errorf(InvalidChannels, err)
			}
			if to < from {
				return nil, curated.Errorf(InvalidChannels, f)
			}
		}

		for c := from; c <= to; c++ {
			channels = append(channels, c)
		}
	}

	return channels, nil
}

func (cl channelList) Set(s string) error {
	channels, err := ParseChannels(s)
	if err != nil {
		return err
	}
	*cl.channels = channels
	return nil
}
