package repositories

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/utils"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (pr *PostRepository) CreatePost(post *models.Post) (*models.Post, []error) {
	var errors []error
	result := pr.db.Create(post)
	if err := result.Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return post, nil
}

func (pr *PostRepository) GetPosts(page, size int) ([]models.Post, int64, []error) {
	return pr.getPostsWhere("", nil, page, size)
}

func (pr *PostRepository) GetPostsByAuthor(authorID uint, page, size int) ([]models.Post, int64, []error) {
	return pr.getPostsWhere("author_id = ?", authorID, page, size)
}

func (pr *PostRepository) getPostsWhere(condition string, value interface{}, page, size int) ([]models.Post, int64, []error) {
	var errors []error
	var posts []models.Post
	var total int64

	transactionErr := pr.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Scopes(utils.Paginate(page, size)).
			Preload("Author").
			Order("created_at DESC")
		countQuery := tx.Model(&models.Post{})
		if condition != "" {
			query = query.Where(condition, value)
			countQuery = countQuery.Where(condition, value)
		}
		if err := query.Find(&posts).Error; err != nil {
			return err
		}
		if err := countQuery.Count(&total).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return nil, 0, errors
	}

	return posts, total, nil
}

func (pr *PostRepository) GetPostById(postID uint) (*models.Post, []error) {
	var errors []error
	var post models.Post

	result := pr.db.
		Preload("Author").
		Where("id = ?", postID).
		First(&post)

	if err := result.Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			errors = append(errors, errs.ErrPostNotFound)
		} else {
			errors = append(errors, err)
		}
		return nil, errors
	}

	return &post, nil
}

func (pr *PostRepository) UpdatePostContent(postID uint, content string) []error {
	var errors []error
	err := pr.db.Model(&models.Post{}).
		Where("id = ?", postID).
		Updates(map[string]interface{}{
			"content":   content,
			"is_edited": true,
		}).Error
	if err != nil {
		errors = append(errors, err)
		return errors
	}
	return nil
}

func (pr *PostRepository) DeletePost(postID uint) []error {
	var errors []error
	transactionErr := pr.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("post_id = ?", postID).Delete(&models.PostLike{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("post_id = ?", postID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("id = ?", postID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return errors
	}
	return nil
}

// ToggleLike mirrors ToggleFollow: delete when liked, otherwise a
// conflict-free insert keyed by the unique (post, user) index.
func (pr *PostRepository) ToggleLike(postID, userID uint) (bool, []error) {
	var errors []error
	var isLiked bool

	transactionErr := pr.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.PostLike{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			isLiked = false
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.PostLike{
			PostID: postID,
			UserID: userID,
		}).Error; err != nil {
			return err
		}
		isLiked = true
		return nil
	})
	if transactionErr != nil {
		errors = append(errors, transactionErr)
		return false, errors
	}

	return isLiked, nil
}

func (pr *PostRepository) CountLikes(postID uint) int64 {
	var count int64
	pr.db.Model(&models.PostLike{}).Where("post_id = ?", postID).Count(&count)
	return count
}

func (pr *PostRepository) IsLikedBy(postID, userID uint) bool {
	if userID == 0 {
		return false
	}
	var count int64
	pr.db.Model(&models.PostLike{}).Where("post_id = ? AND user_id = ?", postID, userID).Count(&count)
	return count > 0
}

func (pr *PostRepository) CreateComment(comment *models.Comment) (*models.Comment, []error) {
	var errors []error
	if err := pr.db.Create(comment).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	result := pr.db.Preload("Author").Where("id = ?", comment.ID).First(comment)
	if err := result.Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return comment, nil
}

func (pr *PostRepository) GetPostComments(postID uint) ([]models.Comment, []error) {
	var errors []error
	var comments []models.Comment
	if err := pr.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error; err != nil {
		errors = append(errors, err)
		return nil, errors
	}
	return comments, nil
}

func (pr *PostRepository) CountPostsByAuthor(authorID uint) int64 {
	var count int64
	pr.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count)
	return count
}
