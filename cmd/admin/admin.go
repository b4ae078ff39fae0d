// Admin runs maintenance tasks against the catalog database.
//
//	admin migrate
//	admin seed <id> <name> <views> <likes>
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ardanlabs/conf/v3"
	"github.com/irsalhamdi/video-catalog/config"
	"github.com/irsalhamdi/video-catalog/core/video"
	"github.com/irsalhamdi/video-catalog/database"
	"github.com/irsalhamdi/video-catalog/validate"
	"github.com/sirupsen/logrus"
)

var errUsage = errors.New("usage: admin migrate | admin seed <id> <name> <views> <likes>")

func main() {
	log := logrus.New()
	log.SetOutput(os.Stdout)

	if err := run(log); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger) error {
	cfg := struct {
		conf.Version
		Args conf.Args
		DB   config.DB
	}{
		Version: conf.Version{
			Desc: "video catalog admin",
		},
	}

	help, err := conf.Parse(config.Prefix, &cfg)
	if err != nil {
		if errors.Is(err, conf.ErrHelpWanted) {
			fmt.Println(help)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DB.Driver == database.DriverMemory {
		return errors.New("the memory driver has nothing to administer")
	}

	db, err := database.Open(cfg.DB)
	if err != nil {
		return fmt.Errorf("opening db: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := database.StatusCheck(ctx, db); err != nil {
		return fmt.Errorf("db not ready: %w", err)
	}

	switch cfg.Args.Num(0) {
	case "migrate":
		if err := database.Migrate(db); err != nil {
			return err
		}
		log.Info("migrations complete")
		return nil

	case "seed":
		v, err := parseSeed(cfg.Args)
		if err != nil {
			return err
		}
		if err := video.NewSQLStore(db).Create(ctx, v); err != nil {
			return fmt.Errorf("seeding: %w", err)
		}
		log.WithField("video_id", v.ID).Info("video seeded")
		return nil
	}

	return errUsage
}

func parseSeed(args conf.Args) (video.Video, error) {
	if len(args) != 5 {
		return video.Video{}, errUsage
	}

	id, err := validate.ParseID(args.Num(1))
	if err != nil {
		return video.Video{}, fmt.Errorf("id: %w", err)
	}
	views, err := strconv.ParseInt(args.Num(3), 10, 64)
	if err != nil {
		return video.Video{}, fmt.Errorf("views: %w", err)
	}
	likes, err := strconv.ParseInt(args.Num(4), 10, 64)
	if err != nil {
		return video.Video{}, fmt.Errorf("likes: %w", err)
	}

	name := args.Num(2)
	vp := video.VideoPut{Name: &name, Views: &views, Likes: &likes}
	if err := validate.Check(vp); err != nil {
		return video.Video{}, err
	}

	return vp.Video(id), nil
}
