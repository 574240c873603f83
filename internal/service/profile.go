package service

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/goodnatureofminers/auctionsight7000-backend/internal/model"
)

// FetchUserProfile returns the user's profile, refreshing it from the name
// service when the cached copy is older than ProfileCacheBlocks blocks.
// Resolution failures are swallowed: profile data is cosmetic and an address
// without a reverse record is the common case. The refresh block is stamped
// even on a partial result so a flaky resolver is not hammered on every call.
func (s *Service) FetchUserProfile(ctx context.Context, address common.Address) (*model.User, error) {
	started := time.Now()

	head, err := s.reader.BlockNumber(ctx)
	if err != nil {
		s.metrics.ObserveProfileFetch(err, false, started)
		return nil, err
	}

	u := s.store.EnsureUser(address)
	if u.ProfileUpdatedAtBlock > 0 && head-u.ProfileUpdatedAtBlock < s.cfg.ProfileCacheBlocks {
		s.metrics.ObserveProfileFetch(nil, true, started)
		return u, nil
	}

	name, err := s.profiles.ReverseName(ctx, address)
	if err != nil {
		s.logger.Debug("reverse name resolution failed",
			zap.String("address", address.Hex()),
			zap.Error(err))
	} else {
		u.ENS = model.Text(name)
		if name != "" {
			s.fetchTextRecords(ctx, u, name)
		}
	}

	u.ProfileUpdatedAtBlock = head
	s.metrics.ObserveProfileFetch(nil, false, started)
	return u, nil
}

func (s *Service) fetchTextRecords(ctx context.Context, u *model.User, name string) {
	var avatar, description, url, email, twitter, github model.OptionalText

	fetch := func(key string, dst *model.OptionalText) func() error {
		return func() error {
			value, err := s.profiles.Text(ctx, name, key)
			if err != nil {
				s.logger.Debug("text record resolution failed",
					zap.String("name", name),
					zap.String("key", key),
					zap.Error(err))
				return nil
			}
			*dst = model.Text(value)
			return nil
		}
	}

	var g errgroup.Group
	g.Go(fetch("avatar", &avatar))
	g.Go(fetch("description", &description))
	g.Go(fetch("url", &url))
	g.Go(fetch("email", &email))
	g.Go(fetch("com.twitter", &twitter))
	g.Go(fetch("com.github", &github))
	_ = g.Wait()

	u.Avatar = avatar
	u.Description = description
	u.URL = url
	u.Email = email
	u.Twitter = twitter
	u.GitHub = github
}
