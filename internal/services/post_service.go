package services

import (
	"github.com/kruti2924/SocialMediaApp/internal/errs"
	"github.com/kruti2924/SocialMediaApp/internal/models"
	"github.com/kruti2924/SocialMediaApp/internal/repositories"
	"github.com/kruti2924/SocialMediaApp/internal/validators"
)

type PostService struct {
	postRepo *repositories.PostRepository
}

func NewPostService(postRepo *repositories.PostRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
	}
}

func (ps *PostService) CreatePost(authorID uint, body *models.CreatePostRequestBody) (*models.PostResponse, []error) {
	if validationErrs := validators.ValidatePostContent(body.Content); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	post := &models.Post{
		AuthorID:         authorID,
		Content:          body.Content,
		Image:            body.Image,
		IsGeneratedImage: body.IsGeneratedImage,
		GenerationPrompt: body.GenerationPrompt,
	}

	created, createErrs := ps.postRepo.CreatePost(post)
	if len(createErrs) > 0 {
		return nil, createErrs
	}
	return ps.buildPostResponse(created.ID, authorID)
}

func (ps *PostService) GetPosts(requesterID uint, page, size int) (*models.PostListResponse, []error) {
	posts, total, listErrs := ps.postRepo.GetPosts(page, size)
	if len(listErrs) > 0 {
		return nil, listErrs
	}
	return ps.buildPostListResponse(posts, total, requesterID, page, size)
}

func (ps *PostService) GetUserPosts(authorID, requesterID uint, page, size int) (*models.PostListResponse, []error) {
	posts, total, listErrs := ps.postRepo.GetPostsByAuthor(authorID, page, size)
	if len(listErrs) > 0 {
		return nil, listErrs
	}
	return ps.buildPostListResponse(posts, total, requesterID, page, size)
}

func (ps *PostService) GetPost(postID, requesterID uint) (*models.PostResponse, []error) {
	return ps.buildPostResponse(postID, requesterID)
}

func (ps *PostService) UpdatePost(postID, requesterID uint, content string) (*models.PostResponse, []error) {
	var errors []error

	if validationErrs := validators.ValidatePostContent(content); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	post, getErrs := ps.postRepo.GetPostById(postID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}
	if post.AuthorID != requesterID {
		errors = append(errors, errs.ErrNotPostAuthor)
		return nil, errors
	}

	if updateErrs := ps.postRepo.UpdatePostContent(postID, content); len(updateErrs) > 0 {
		return nil, updateErrs
	}
	return ps.buildPostResponse(postID, requesterID)
}

func (ps *PostService) DeletePost(postID, requesterID uint) []error {
	var errors []error

	post, getErrs := ps.postRepo.GetPostById(postID)
	if len(getErrs) > 0 {
		return getErrs
	}
	if post.AuthorID != requesterID {
		errors = append(errors, errs.ErrNotPostAuthor)
		return errors
	}

	return ps.postRepo.DeletePost(postID)
}

func (ps *PostService) ToggleLike(postID, userID uint) (bool, int64, []error) {
	if _, getErrs := ps.postRepo.GetPostById(postID); len(getErrs) > 0 {
		return false, 0, getErrs
	}

	isLiked, toggleErrs := ps.postRepo.ToggleLike(postID, userID)
	if len(toggleErrs) > 0 {
		return false, 0, toggleErrs
	}
	return isLiked, ps.postRepo.CountLikes(postID), nil
}

func (ps *PostService) AddComment(postID, authorID uint, content string) (*models.CommentResponse, []error) {
	if validationErrs := validators.ValidateCommentContent(content); len(validationErrs) > 0 {
		return nil, validationErrs
	}

	if _, getErrs := ps.postRepo.GetPostById(postID); len(getErrs) > 0 {
		return nil, getErrs
	}

	comment, createErrs := ps.postRepo.CreateComment(&models.Comment{
		PostID:   postID,
		AuthorID: authorID,
		Content:  content,
	})
	if len(createErrs) > 0 {
		return nil, createErrs
	}

	response := comment.ToCommentResponse(comment.Author.ToUserResponse())
	return &response, nil
}

func (ps *PostService) buildPostResponse(postID, requesterID uint) (*models.PostResponse, []error) {
	post, getErrs := ps.postRepo.GetPostById(postID)
	if len(getErrs) > 0 {
		return nil, getErrs
	}

	comments, commentErrs := ps.postRepo.GetPostComments(postID)
	if len(commentErrs) > 0 {
		return nil, commentErrs
	}
	commentResponses := []models.CommentResponse{}
	for _, comment := range comments {
		commentResponses = append(commentResponses, comment.ToCommentResponse(comment.Author.ToUserResponse()))
	}

	return post.ToPostResponse(
		post.Author.ToUserResponse(),
		ps.postRepo.CountLikes(postID),
		ps.postRepo.IsLikedBy(postID, requesterID),
		commentResponses,
	), nil
}

func (ps *PostService) buildPostListResponse(posts []models.Post, total int64, requesterID uint, page, size int) (*models.PostListResponse, []error) {
	postResponses := []*models.PostResponse{}
	for i := range posts {
		response, buildErrs := ps.buildPostResponse(posts[i].ID, requesterID)
		if len(buildErrs) > 0 {
			return nil, buildErrs
		}
		postResponses = append(postResponses, response)
	}

	return &models.PostListResponse{
		Posts:      postResponses,
		Pagination: models.NewPagination(page, size, total),
	}, nil
}
