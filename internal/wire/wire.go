package wire

import (
	"Craftstone/internal/api"
	"Craftstone/internal/api/config"
	"Craftstone/internal/api/handler"
	"Craftstone/internal/job"
	"Craftstone/internal/pkg/cron"
	"Craftstone/internal/pkg/es"
	"Craftstone/internal/pkg/kafka"
	"Craftstone/internal/repository"
	"Craftstone/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	KafkaManager *kafka.ConsumerManager
	CronMgr      *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	resourceRepo := repository.NewResourceRepository(db)
	trendingRepo := repository.NewTrendingRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	recommendationRepo := repository.NewRecommendationRepository(db)
	followRepo := repository.NewFollowRepository(db)
	tagRepo := repository.NewTagRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)

	resourceESRepo := es.NewResourceRepo(es.Client)

	searchService := service.NewSearchService(resourceRepo)
	autocompleteService := service.NewAutocompleteService(resourceESRepo, tagRepo, profileRepo)
	feedService := service.NewFeedService(resourceRepo, recommendationRepo, activityRepo, followRepo)
	activityService := service.NewActivityService(activityRepo, trendingRepo, resourceRepo)
	followService := service.NewFollowService(followRepo)
	resourceService := service.NewResourceService(resourceRepo)
	categoryService := service.NewCategoryService(categoryRepo)

	handlers := &api.HandlersGroup{
		SearchHandler:       handler.NewSearchHandler(searchService),
		AutocompleteHandler: handler.NewAutocompleteHandler(autocompleteService),
		FeedHandler:         handler.NewFeedHandler(feedService),
		ActivityHandler:     handler.NewActivityHandler(activityService),
		FollowHandler:       handler.NewFollowHandler(followService),
		ResourceHandler:     handler.NewResourceHandler(resourceService),
		CategoryHandler:     handler.NewCategoryHandler(categoryService),
	}

	router := api.SetupRouter(handlers)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, resourceESRepo)
	if err != nil {
		return nil, err
	}

	cronMgr := cron.NewCronManager(job.NewTrendingDecayJob(trendingRepo))

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		KafkaManager: kafkaMgr,
		CronMgr:      cronMgr,
	}, nil
}
